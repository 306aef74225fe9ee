package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prompter/internal/library"
	"github.com/ziadkadry99/prompter/internal/rehearse"
	"github.com/ziadkadry99/prompter/internal/sanitize"
	"github.com/ziadkadry99/prompter/internal/script"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [FILE|PATTERN...]",
	Short: "Parse scripts and print their slides",
	Long: `Parses each script and prints it either as a numbered outline or as the
sanitized slide JSON the presenter view renders. Arguments may be paths or
glob patterns such as "talks/**/*.txt". With no arguments the configured
script patterns are searched under the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if parseFormat != "outline" && parseFormat != "json" {
			return fmt.Errorf("unknown format %q: must be outline or json", parseFormat)
		}

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
			return fmt.Errorf("no scripts found")
		}

		type parsed struct {
			File   string        `json:"file"`
			Slides script.Script `json:"slides"`
		}
		var results []parsed

		for i, path := range paths {
			_, sc, err := library.Read(path)
			if err != nil {
				return err
			}

			if parseFormat == "json" {
				results = append(results, parsed{File: path, Slides: sanitize.Script(sc)})
				continue
			}

			if len(paths) > 1 {
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("==> %s <==\n", path)
			}
			fmt.Print(rehearse.Outline(sc))
		}

		if parseFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "outline", "output format: outline or json")
	rootCmd.AddCommand(parseCmd)
}
