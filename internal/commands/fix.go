package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/curlify/internal/logger"
	"github.com/gerunddev/curlify/internal/process"
	"github.com/gerunddev/curlify/internal/styles"
)

// Fix rewrites the given files in place.
func Fix(args []string) {
	successStyle := styles.SuccessStyle
	errorStyle := styles.ErrorStyle
	dimStyle := styles.DimStyle

	opts, err := parseRunArgs(args, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	lg := newRunLogger(opts)
	lg.ConfigLoaded(opts.cfg.Style, opts.cfg.Backup)
	proc := process.New(opts.cfg, lg)

	files, err := collectFiles(proc, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	start := time.Now()
	failed := 0
	rewritten := 0

	for _, file := range files {
		res := proc.ProcessFile(file)
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("✗ %s: %v", file, res.Err)))
		case !res.Changed:
			fmt.Println(dimStyle.Render(fmt.Sprintf("  %s (unchanged)", file)))
		default:
			rewritten++
			line := fmt.Sprintf("✓ %s (%d double, %d single)", file, res.Stats.Doubles, res.Stats.Singles)
			fmt.Println(successStyle.Render(line))
			if res.BackupPath != "" {
				fmt.Println(dimStyle.Render("  backup: " + res.BackupPath))
			}
		}
	}

	lg.RunCompleted(len(files)-failed, failed, time.Since(start))

	summary := fmt.Sprintf("Done: %d/%d files processed, %d rewritten", len(files)-failed, len(files), rewritten)
	if failed > 0 {
		fmt.Println(errorStyle.Render(summary))
		os.Exit(1)
	}
	fmt.Println(successStyle.Render(summary))
}

// newRunLogger builds the logger for a run: debug to stderr with
// --verbose, warnings only otherwise, plus the configured log file.
func newRunLogger(opts *runOptions) *logger.Logger {
	level := log.WarnLevel
	if opts.verbose {
		level = log.DebugLevel
	}

	if opts.cfg.LogFile != "" {
		if fileLogger, _, err := logger.NewFileLogger(opts.cfg.LogFile); err == nil {
			fileLogger.SetLevel(level)
			return fileLogger
		}
	}
	return logger.NewWithLevel(os.Stderr, level)
}

// collectFiles merges explicit file arguments with --dir scans.
func collectFiles(proc *process.Processor, opts *runOptions) ([]string, error) {
	files := append([]string(nil), opts.files...)
	for _, dir := range opts.dirs {
		scanned, err := proc.ScanDirectory(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		files = append(files, scanned...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no supported files found")
	}
	return files, nil
}
