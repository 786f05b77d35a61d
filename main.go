package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/curlify/internal/commands"
	"github.com/gerunddev/curlify/internal/config"
	"github.com/gerunddev/curlify/internal/rewrite"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "fix":
		commands.Fix(os.Args[2:])
	case "check":
		commands.Check(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("curlify v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Bare file arguments behave like the classic one-shot script
		commands.Fix(os.Args[1:])
	}
}

func printUsage() {
	usage := fmt.Sprintf(`curlify - Rewrite straight quotes into paired directional glyphs

Usage:
  curlify <command> [options] <files...>
  curlify <files...>              (same as 'curlify fix')

Commands:
  fix         Rewrite files in place (keeps a .bak backup by default)
  check       Dry run: report what would change, write nothing
  version     Show version information
  help        Show this help message

Options:
  --no-backup       Do not keep a backup copy
  --suffix <s>      Backup suffix (default .bak)
  --style <name>    Target glyphs: %s (default curly)
  --smart           Decide open/close by surrounding whitespace
  --no-singles      Leave single quotes untouched
  --no-normalize    Do not fold existing directional quotes first
  --code            Also rewrite quotes inside markdown code regions
  --dir <path>      Process every supported file under a directory
  --diff            Show a unified diff (check only)
  --verbose         Debug logging

Examples:
  curlify file.tex
  curlify fix --no-backup notes.md
  curlify fix --style corner --dir docs/
  curlify check --diff chapter.md

Configuration:
  Config file: %s
`, strings.Join(rewrite.ConventionNames(), ", "), config.ConfigPath())
	fmt.Print(usage)
}
