package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/db"
	mcpserver "github.com/ziadkadry99/prompter/internal/mcp"
	"github.com/ziadkadry99/prompter/internal/share"
)

var mcpNoShare bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to parse scripts, estimate their running time and share them by link.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logCloser, err := loadConfig()
		if err != nil {
			return err
		}
		defer logCloser.Close()

		var store mcpserver.ScriptStore
		if !mcpNoShare {
			database, err := db.Open(cfg.DBPath())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			store = share.NewStore(database, cfg.MaxScriptChars)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "prompter MCP server started on stdio (share=%t, db=%s)\n", store != nil, cfg.DBPath())

		srv := mcpserver.NewServer(store, cfg.BaseURL)
		return srv.Serve()
	},
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpNoShare, "no-share", false, "disable the sharing tools")
	rootCmd.AddCommand(mcpCmd)
}
