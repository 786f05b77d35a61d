package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/curlify/internal/diff"
	"github.com/gerunddev/curlify/internal/process"
	"github.com/gerunddev/curlify/internal/styles"
)

// Check reports what a fix run would change, without writing anything.
// With --diff it also shows a rendered unified diff per file.
func Check(args []string) {
	titleStyle := styles.TitleStyle
	errorStyle := styles.ErrorStyle
	dimStyle := styles.DimStyle
	highlightStyle := styles.HighlightStyle

	opts, err := parseRunArgs(args, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	lg := newRunLogger(opts)
	proc := process.New(opts.cfg, lg)

	files, err := collectFiles(proc, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	failed := 0
	pending := 0

	for _, file := range files {
		before, after, stats, err := proc.Preview(file)
		if err != nil {
			failed++
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("✗ %s: %v", file, err)))
			continue
		}

		if after == before {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  %s (nothing to change)", file)))
			continue
		}
		pending++

		fmt.Println(titleStyle.Render(file))
		fmt.Println(highlightStyle.Render(
			fmt.Sprintf("  would replace %d double, %d single quotes", stats.Doubles, stats.Singles)))
		if stats.Protected > 0 {
			fmt.Println(dimStyle.Render(
				fmt.Sprintf("  %d quotes protected in code regions", stats.Protected)))
		}

		if opts.diff {
			rendered, err := diff.Preview(file, before, after)
			if err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("✗ %s: diff failed: %v", file, err)))
				continue
			}
			fmt.Print(rendered)
		}
	}

	summary := fmt.Sprintf("Checked %d files: %d would change, %d errors", len(files), pending, failed)
	if failed > 0 {
		fmt.Println(errorStyle.Render(summary))
		os.Exit(1)
	}
	fmt.Println(dimStyle.Render(summary))
}
