package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prompter",
	Short: "A teleprompter for speakers, with shared scripts and remote control",
	Long: `Prompter turns plain-text talk scripts into slides of spoken lines and
presenter cues, scrolls them at a steady reading speed, and keeps a
running timer. Scripts can be shared by link and a session can be driven
from a second device over a WebSocket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".prompter.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
