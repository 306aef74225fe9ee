package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/config"
	"github.com/ziadkadry99/prompter/internal/db"
	"github.com/ziadkadry99/prompter/internal/remote"
	"github.com/ziadkadry99/prompter/internal/server"
	"github.com/ziadkadry99/prompter/internal/settings"
	"github.com/ziadkadry99/prompter/internal/share"
)

// sweepInterval is how often expired shared scripts are removed.
const sweepInterval = time.Hour

var (
	servePort    int
	serveNoShare bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the share and remote-control server",
	Long: `Starts the prompter HTTP server. It accepts script uploads and serves
them back by link, hosts live sessions over a WebSocket so a phone can
act as a clicker, and serves the themed favicon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logCloser, err := loadConfig()
		if err != nil {
			return err
		}
		defer logCloser.Close()

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		var shares *share.Store
		if !serveNoShare {
			database, err := db.Open(cfg.DBPath())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			shares = share.NewStore(database, cfg.MaxScriptChars)
		}

		var loader share.Loader
		if shares != nil {
			loader = shares
		}
		hub := remote.NewHub(remote.Config{
			FrameInterval: cfg.FrameInterval(),
			TimerInterval: cfg.TimerInterval(),
			ScrollLevel:   cfg.ScrollLevel,
			MaxChars:      cfg.MaxScriptChars,
		}, loader)

		theme, _ := settings.ParseTheme(cfg.Theme)
		accent, _ := settings.ParseAccent(cfg.Accent)
		srv := server.New(server.Config{
			Port:     port,
			BaseURL:  cfg.BaseURL,
			AllowAll: true,
			Theme:    theme,
			Accent:   accent,
		}, shares, hub)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		if shares != nil && cfg.Retention() > 0 {
			go sweepShares(ctx, shares, cfg)
		}

		fmt.Fprintf(os.Stderr, "prompter server v%s starting on port %d\n", Version, port)
		if shares != nil {
			fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DBPath())
			fmt.Fprintf(os.Stderr, "  Share links: %s/s/<id>\n", cfg.BaseURL)
		} else {
			fmt.Fprintln(os.Stderr, "  Sharing disabled")
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// sweepShares deletes shared scripts older than the retention window once
// at startup and then every sweepInterval until ctx is done.
func sweepShares(ctx context.Context, shares *share.Store, cfg *config.Config) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		cutoff := time.Now().Add(-cfg.Retention())
		n, err := shares.DeleteBefore(ctx, cutoff)
		if err != nil {
			slog.Warn("share sweep failed", "error", err)
		} else if n > 0 {
			slog.Info("expired shared scripts removed", "count", n, "cutoff", cutoff.UTC().Format(time.RFC3339))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoShare, "no-share", false, "disable script sharing and the database")
	rootCmd.AddCommand(serveCmd)
}
