package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/db"
	"github.com/ziadkadry99/prompter/internal/library"
	"github.com/ziadkadry99/prompter/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share FILE",
	Short: "Store a script in the local database and print its share link",
	Long: `Saves a script the same way an upload to "prompter serve" does and prints
the link it will be reachable at once the server is running.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logCloser, err := loadConfig()
		if err != nil {
			return err
		}
		defer logCloser.Close()

		content, _, err := library.Read(args[0])
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		saved, err := share.NewStore(database, cfg.MaxScriptChars).Save(cmd.Context(), content)
		if err != nil {
			return err
		}

		fmt.Printf("%s/s/%s\n", strings.TrimRight(cfg.BaseURL, "/"), saved.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
