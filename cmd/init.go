package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize prompter configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to pick a theme, accent, reading speed and server settings, and writes a .prompter.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
