package commands

import (
	"fmt"
	"strings"

	"github.com/gerunddev/curlify/internal/config"
)

// runOptions holds the effective settings for one invocation: the loaded
// config with flag overrides applied, plus the selected inputs.
type runOptions struct {
	cfg     *config.Config
	files   []string
	dirs    []string
	verbose bool
	diff    bool
}

// parseRunArgs loads the config and applies command-line overrides.
// Anything that is not a recognized flag is treated as an input path.
// allowDiff gates --diff, which only the check command supports.
func parseRunArgs(args []string, allowDiff bool) (*runOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := &runOptions{cfg: cfg}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--backup":
			cfg.Backup = true
		case "--no-backup":
			cfg.Backup = false
		case "--smart":
			cfg.Smart = true
		case "--no-singles":
			cfg.Singles = false
		case "--no-normalize":
			cfg.Normalize = false
		case "--code":
			cfg.SkipCode = false
		case "--diff":
			if !allowDiff {
				return nil, fmt.Errorf("--diff is only supported by the check command")
			}
			opts.diff = true
		case "--verbose":
			opts.verbose = true
		case "--style":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--style requires a value")
			}
			i++
			cfg.Style = args[i]
		case "--suffix":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--suffix requires a value")
			}
			i++
			cfg.BackupSuffix = args[i]
		case "--dir":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--dir requires a value")
			}
			i++
			opts.dirs = append(opts.dirs, args[i])
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			opts.files = append(opts.files, arg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(opts.files) == 0 && len(opts.dirs) == 0 {
		return nil, fmt.Errorf("no input files specified")
	}

	return opts, nil
}
