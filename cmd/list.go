package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/library"
	"github.com/ziadkadry99/prompter/internal/rehearse"
	"github.com/ziadkadry99/prompter/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list [FILE|PATTERN...]",
	Short: "List scripts with their size and estimated running time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logCloser, err := loadConfig()
		if err != nil {
			return err
		}
		defer logCloser.Close()

		paths, err := resolveScripts(cfg, args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No scripts found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tSLIDES\tLINES\tEST. TIME")
		for _, path := range paths {
			_, sc, err := library.Read(path)
			if err != nil {
				fmt.Fprintf(w, "%s\t-\t-\t%v\n", path, err)
				continue
			}
			est := session.FormatElapsed(rehearse.EstimateDuration(sc, cfg.ScrollLevel))
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", path, len(sc), sc.TotalLines(), est)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
