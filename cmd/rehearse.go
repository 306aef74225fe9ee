package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/library"
	"github.com/ziadkadry99/prompter/internal/progress"
	"github.com/ziadkadry99/prompter/internal/rehearse"
	"github.com/ziadkadry99/prompter/internal/session"
)

var (
	rehearseLevel    int
	rehearseViewport float64
)

var rehearseCmd = &cobra.Command{
	Use:   "rehearse FILE",
	Short: "Rehearse a script in the terminal at teleprompter speed",
	Long: `Auto-scrolls a script in the terminal. Each line is printed as it reaches
the reading line, at the same pace the presenter view would scroll it.
Press Ctrl-C to stop early.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logCloser, err := loadConfig()
		if err != nil {
			return err
		}
		defer logCloser.Close()

		level := cfg.ScrollLevel
		if cmd.Flags().Changed("level") {
			if rehearseLevel < session.MinScrollLevel || rehearseLevel > session.MaxScrollLevel {
				return fmt.Errorf("level must be between %d and %d", session.MinScrollLevel, session.MaxScrollLevel)
			}
			level = rehearseLevel
		}

		_, sc, err := library.Read(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Rehearsing %s at speed %d (about %s)\n", args[0], level,
			session.FormatElapsed(rehearse.EstimateDuration(sc, level)))

		res, err := rehearse.Run(ctx, sc, rehearse.Options{
			Out:            os.Stdout,
			Reporter:       progress.NewReporter(os.Stderr),
			ScrollLevel:    level,
			FrameInterval:  cfg.FrameInterval(),
			TimerInterval:  cfg.TimerInterval(),
			ViewportHeight: rehearseViewport,
		})
		if errors.Is(err, rehearse.ErrNoLines) {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if err != nil {
			return err
		}
		if !res.Completed {
			fmt.Fprintf(os.Stderr, "Stopped after %d of %d lines\n", res.LinesRead, sc.TotalLines())
		}
		return nil
	},
}

func init() {
	rehearseCmd.Flags().IntVar(&rehearseLevel, "level", 0, "scroll speed level 1-7 (overrides config)")
	rehearseCmd.Flags().Float64Var(&rehearseViewport, "viewport", rehearse.DefaultViewportHeight, "virtual window height in pixels")
	rootCmd.AddCommand(rehearseCmd)
}
