package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/prompter/internal/config"
	"github.com/ziadkadry99/prompter/internal/library"
	"github.com/ziadkadry99/prompter/internal/logging"
)

// loadConfig loads and validates the config, then installs the logger it
// describes. The caller closes the returned closer on exit.
func loadConfig() (*config.Config, io.Closer, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w\nRun `prompter init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	opts := cfg.LogOptions()
	if verbose {
		opts.Level = "debug"
	}
	return cfg, logging.Init(opts), nil
}

// resolveScripts expands command-line arguments into script paths. Plain
// paths are kept as given and glob patterns are expanded with ** support.
// With no arguments the configured script patterns are searched under the
// working directory.
func resolveScripts(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		files, err := library.Scan(library.Config{RootDir: ".", Include: cfg.Scripts})
		if err != nil {
			return nil, err
		}
		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = f.RelPath
		}
		return paths, nil
	}

	var paths []string
	for _, arg := range args {
		if !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(filepath.ToSlash(pattern), "*?[{")
}
