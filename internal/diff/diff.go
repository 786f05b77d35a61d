// Package diff renders a unified diff preview of a proposed rewrite.
package diff

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Preview generates a rendered unified diff between a file's current
// content and its proposed rewrite.
func Preview(path, before, after string) (string, error) {
	name := filepath.Base(path)

	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	unified := fmt.Sprint(gotextdiff.ToUnified(name, name+" (rewritten)", before, edits))

	// Wrap in a diff code fence for proper syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	// Render with Glamour for beautiful terminal output
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown, nil
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown, nil
	}

	return rendered, nil
}
