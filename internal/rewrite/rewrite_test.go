package rewrite

import (
	"strings"
	"testing"
)

func TestRewriteAlternate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no quotes is identity",
			input:    "plain text, no quotes at all.\n",
			expected: "plain text, no quotes at all.\n",
		},
		{
			name:     "paired double and single quotes",
			input:    `He said "hello" and 'bye'.`,
			expected: "He said “hello” and ‘bye’.",
		},
		{
			name:     "double quotes alternate positionally",
			input:    `"a" "b" "c"`,
			expected: "“a” “b” “c”",
		},
		{
			name:     "unbalanced double quotes do not fail",
			input:    `"a" "b`,
			expected: "“a” “b",
		},
		{
			name:     "kinds alternate independently",
			input:    `"it's" fine`,
			expected: "“it‘s” fine",
		},
		{
			name:     "apostrophe alternates by position",
			input:    "rock 'n' roll",
			expected: "rock ‘n’ roll",
		},
		{
			name:     "state carries across lines",
			input:    "\"first\nsecond\" done\n",
			expected: "“first\nsecond” done\n",
		},
		{
			name:     "quote at start and end",
			input:    `"edge"`,
			expected: "“edge”",
		},
	}

	r := New(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, _ := r.Rewrite(tt.input)
			if actual != tt.expected {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestRewriteSmart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "opens after whitespace closes after word",
			input:    `He said "hello" twice.`,
			expected: "He said “hello” twice.",
		},
		{
			name:     "apostrophe closes",
			input:    "it's Bob's",
			expected: "it’s Bob’s",
		},
		{
			name:     "start of document counts as whitespace",
			input:    `"lead`,
			expected: "“lead",
		},
		{
			name:     "start of line counts as whitespace",
			input:    "end\n\"lead",
			expected: "end\n“lead",
		},
	}

	opts := DefaultOptions()
	opts.Mode = ModeSmart
	r := New(opts)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, _ := r.Rewrite(tt.input)
			if actual != tt.expected {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestRewriteConventions(t *testing.T) {
	input := `"a" 'b'`
	tests := []struct {
		style    string
		expected string
	}{
		{style: "curly", expected: "“a” ‘b’"},
		{style: "corner", expected: "「a」 『b』"},
		{style: "angle", expected: "«a» ‹b›"},
		{style: "german", expected: "„a“ ‚b‘"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			conv, err := ParseConvention(tt.style)
			if err != nil {
				t.Fatalf("ParseConvention(%q) failed: %v", tt.style, err)
			}
			opts := DefaultOptions()
			opts.Convention = conv
			actual, _ := New(opts).Rewrite(input)
			if actual != tt.expected {
				t.Errorf("style %s: got %q, want %q", tt.style, actual, tt.expected)
			}
		})
	}
}

func TestParseConventionUnknown(t *testing.T) {
	if _, err := ParseConvention("fancy"); err == nil {
		t.Error("Expected error for unknown convention")
	}
}

func TestRewriteIdempotent(t *testing.T) {
	inputs := []string{
		`He said "hello" and 'bye'.`,
		"\"multi\nline\" text with 'both' kinds\n",
		`"a" "b" 'c' unbalanced "`,
	}

	r := New(DefaultOptions())
	for _, input := range inputs {
		first, _ := r.Rewrite(input)
		second, stats := r.Rewrite(first)
		if second != first {
			t.Errorf("Rewrite not idempotent: %q became %q", first, second)
		}
		if stats.Protected != 0 {
			t.Errorf("unexpected protected count %d on re-run", stats.Protected)
		}
	}
}

func TestRewriteConvertedTextWithoutNormalize(t *testing.T) {
	opts := DefaultOptions()
	opts.Normalize = false
	r := New(opts)

	input := "already “converted” and ‘done’"
	actual, stats := r.Rewrite(input)
	if actual != input {
		t.Errorf("Rewrite changed converted text: got %q", actual)
	}
	if stats.Changed() {
		t.Errorf("Expected no replacements, got %+v", stats)
	}
}

func TestRewritePreservesNonQuotes(t *testing.T) {
	input := "Tabs\tand\nnewlines, #chars, 中文, emoji 🎉, \"quoted\" 'bits'"
	actual, _ := New(DefaultOptions()).Rewrite(input)

	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch r {
			case '"', '\'', '“', '”', '‘', '’':
				return -1
			}
			return r
		}, s)
	}
	if strip(actual) != strip(input) {
		t.Errorf("Non-quote characters changed:\ninput:  %q\noutput: %q", input, actual)
	}
}

func TestRewriteDoublesOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.Singles = false
	r := New(opts)

	input := `"hi" it's 'fine'`
	expected := "“hi” it's 'fine'"
	actual, stats := r.Rewrite(input)
	if actual != expected {
		t.Errorf("Rewrite(%q) = %q, want %q", input, actual, expected)
	}
	if stats.Doubles != 2 || stats.Singles != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRewriteStats(t *testing.T) {
	input := `"a" "b" 'c'`
	_, stats := New(DefaultOptions()).Rewrite(input)
	if stats.Doubles != 4 {
		t.Errorf("Expected 4 double replacements, got %d", stats.Doubles)
	}
	if stats.Singles != 2 {
		t.Errorf("Expected 2 single replacements, got %d", stats.Singles)
	}
}

func TestRewriteSkipCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline code untouched",
			input:    "use `x = \"y\"` to set \"it\"",
			expected: "use `x = \"y\"` to set “it”",
		},
		{
			name:     "unmatched backtick is literal",
			input:    "a ` stray and \"quoted\"",
			expected: "a ` stray and “quoted”",
		},
		{
			name:     "double backtick span",
			input:    "see ``\"raw\"`` here",
			expected: "see ``\"raw\"`` here",
		},
		{
			name:     "fenced block untouched",
			input:    "before \"q\"\n```\ns = \"code\"\n```\nafter \"r\"\n",
			expected: "before “q”\n```\ns = \"code\"\n```\nafter “r”\n",
		},
		{
			name:     "tilde fence",
			input:    "~~~\n\"code\"\n~~~\ntext \"q\"\n",
			expected: "~~~\n\"code\"\n~~~\ntext “q”\n",
		},
		{
			name:     "unclosed fence protects to end",
			input:    "```\n\"still code\"\n\"more\"\n",
			expected: "```\n\"still code\"\n\"more\"\n",
		},
		{
			name:     "shorter run does not close fence",
			input:    "````\n```\n\"code\"\n````\n\"text\"\n",
			expected: "````\n```\n\"code\"\n````\n“text”\n",
		},
		{
			name:     "alternation does not advance inside code",
			input:    "\"open\n```\n\"a\" \"b\" \"c\"\n```\nclose\"\n",
			expected: "“open\n```\n\"a\" \"b\" \"c\"\n```\nclose”\n",
		},
		{
			name:     "directional quotes in fence stay verbatim",
			input:    "text \"q\"\n```\nprint(“hi”)\n```\n",
			expected: "text “q”\n```\nprint(“hi”)\n```\n",
		},
		{
			name:     "directional quotes in inline code stay verbatim",
			input:    "see `“x”` and \"y\"",
			expected: "see `“x”` and “y”",
		},
		{
			name:     "single variants in fence stay verbatim",
			input:    "```\nit’s ‚raw‛\n```\nit's\n",
			expected: "```\nit’s ‚raw‛\n```\nit‘s\n",
		},
	}

	opts := DefaultOptions()
	opts.SkipCode = true
	r := New(opts)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, _ := r.Rewrite(tt.input)
			if actual != tt.expected {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestRewriteSkipCodeStats(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipCode = true
	input := "`\"a\"` and \"b\"\n"
	_, stats := New(opts).Rewrite(input)
	if stats.Protected != 2 {
		t.Errorf("Expected 2 protected quotes, got %d", stats.Protected)
	}
	if stats.Doubles != 2 {
		t.Errorf("Expected 2 replacements, got %d", stats.Doubles)
	}
}

func TestRewriteProtectedCountsEnabledKindsOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipCode = true
	opts.Singles = false
	input := "`\"a\" 'b'` and \"c\"\n"
	_, stats := New(opts).Rewrite(input)
	if stats.Protected != 2 {
		t.Errorf("Expected 2 protected quotes with singles disabled, got %d", stats.Protected)
	}
}
