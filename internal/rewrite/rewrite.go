// Package rewrite converts straight ASCII quotation marks into paired
// directional glyphs for a target typographic convention.
package rewrite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how open vs close is decided for each straight quote.
type Mode int

const (
	// ModeAlternate toggles open/close per quote kind in occurrence order.
	ModeAlternate Mode = iota
	// ModeSmart opens after whitespace and closes otherwise.
	ModeSmart
)

// Options configures a Rewriter.
type Options struct {
	Convention Convention
	Mode       Mode
	Doubles    bool // convert straight double quotes
	Singles    bool // convert straight single quotes
	Normalize  bool // re-pair directional variants found outside code regions
	SkipCode   bool // leave markdown code fences and inline code untouched
}

// DefaultOptions matches the reference behavior plus single-quote handling.
func DefaultOptions() Options {
	return Options{
		Convention: Curly,
		Mode:       ModeAlternate,
		Doubles:    true,
		Singles:    true,
		Normalize:  true,
		SkipCode:   false,
	}
}

// Stats summarizes one rewrite pass.
type Stats struct {
	Doubles   int // double quotes replaced
	Singles   int // single quotes replaced
	Protected int // quote characters left untouched in code regions
}

// Changed reports whether the pass replaced anything.
func (s Stats) Changed() bool {
	return s.Doubles > 0 || s.Singles > 0
}

// Rewriter performs the quote-pairing pass. It is stateless between calls;
// alternation state lives on the stack of each Rewrite call so the same
// Rewriter can be reused across files.
type Rewriter struct {
	opts Options
}

// New creates a Rewriter with the given options.
func New(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

// scanState carries the per-document pairing state through one pass.
type scanState struct {
	prev       rune
	doubleOpen bool
	singleOpen bool
}

// Rewrite converts the straight quotes in text and returns the result with
// replacement counts. Non-quote characters pass through unchanged and in
// order. Unbalanced input never fails: each quote still maps to exactly one
// glyph, alternating positionally.
func (r *Rewriter) Rewrite(text string) (string, Stats) {
	var stats Stats

	if !strings.ContainsAny(text, `"'`) &&
		!(r.opts.Normalize && containsVariant(text, r.opts.Doubles, r.opts.Singles)) {
		return text, stats
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	// Start of document counts as whitespace for smart mode.
	st := scanState{prev: ' '}

	inFence := false
	var fenceChar byte
	fenceLen := 0

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if r.opts.SkipCode {
			if c, n, rest, ok := fenceRun(line); ok {
				if !inFence {
					inFence, fenceChar, fenceLen = true, c, n
				} else if c == fenceChar && n >= fenceLen && strings.TrimSpace(rest) == "" {
					inFence = false
				}
				b.WriteString(line)
				stats.Protected += r.countProtected(line)
				st.prev = '\n'
				continue
			}
			if inFence {
				b.WriteString(line)
				stats.Protected += r.countProtected(line)
				st.prev = '\n'
				continue
			}
		}
		r.rewriteLine(line, &b, &st, &stats)
	}

	return b.String(), stats
}

// rewriteLine converts one line, carrying pairing state across lines.
func (r *Rewriter) rewriteLine(line string, b *strings.Builder, st *scanState, stats *Stats) {
	for i := 0; i < len(line); {
		rn, size := utf8.DecodeRuneInString(line[i:])

		if r.opts.SkipCode && rn == '`' {
			n := runLen(line[i:], '`')
			if off := closingRun(line[i+n:], n); off >= 0 {
				span := line[i : i+n+off+n]
				b.WriteString(span)
				stats.Protected += r.countProtected(span)
				st.prev = '`'
				i += len(span)
				continue
			}
			// Unmatched backtick run is literal text; quotes after it
			// are still converted.
			b.WriteString(line[i : i+n])
			st.prev = '`'
			i += n
			continue
		}

		// Variants fold only here, never inside a protected span, so
		// code regions come back byte-identical.
		if r.opts.Normalize {
			rn = foldVariant(rn, r.opts.Doubles, r.opts.Singles)
		}

		switch {
		case rn == '"' && r.opts.Doubles:
			b.WriteRune(r.pickDouble(st))
			stats.Doubles++
		case rn == '\'' && r.opts.Singles:
			b.WriteRune(r.pickSingle(st))
			stats.Singles++
		default:
			b.WriteRune(rn)
		}
		st.prev = rn
		i += size
	}
}

func (r *Rewriter) pickDouble(st *scanState) rune {
	if r.opts.Mode == ModeSmart {
		if unicode.IsSpace(st.prev) {
			return r.opts.Convention.DoubleOpen
		}
		return r.opts.Convention.DoubleClose
	}
	if st.doubleOpen {
		st.doubleOpen = false
		return r.opts.Convention.DoubleClose
	}
	st.doubleOpen = true
	return r.opts.Convention.DoubleOpen
}

func (r *Rewriter) pickSingle(st *scanState) rune {
	if r.opts.Mode == ModeSmart {
		if unicode.IsSpace(st.prev) {
			return r.opts.Convention.SingleOpen
		}
		return r.opts.Convention.SingleClose
	}
	if st.singleOpen {
		st.singleOpen = false
		return r.opts.Convention.SingleClose
	}
	st.singleOpen = true
	return r.opts.Convention.SingleOpen
}

// fenceRun reports whether a line opens or closes a fenced code block:
// up to three leading spaces, then a run of at least three backticks or
// tildes. rest is whatever follows the run.
func fenceRun(line string) (char byte, n int, rest string, ok bool) {
	s := line
	for i := 0; i < 3 && strings.HasPrefix(s, " "); i++ {
		s = s[1:]
	}
	if len(s) == 0 || (s[0] != '`' && s[0] != '~') {
		return 0, 0, "", false
	}
	char = s[0]
	n = runLen(s, char)
	if n < 3 {
		return 0, 0, "", false
	}
	return char, n, s[n:], true
}

// runLen returns the length of the leading run of c in s.
func runLen(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// closingRun returns the byte offset in s of a run of exactly n backticks,
// or -1 if none exists.
func closingRun(s string, n int) int {
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '`')
		if j < 0 {
			return -1
		}
		start := i + j
		run := runLen(s[start:], '`')
		if run == n {
			return start
		}
		i = start + run
	}
	return -1
}

// countProtected counts the straight quotes of enabled kinds in a
// protected span.
func (r *Rewriter) countProtected(s string) int {
	n := 0
	if r.opts.Doubles {
		n += strings.Count(s, `"`)
	}
	if r.opts.Singles {
		n += strings.Count(s, `'`)
	}
	return n
}
