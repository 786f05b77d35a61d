package rewrite

// Directional and variant quote characters folded back to their straight
// ASCII counterparts during the pairing pass, so that a re-run over
// already-converted text re-pairs instead of nesting glyphs.
var doubleVariants = map[rune]bool{
	'“': true, // “ left double quotation mark
	'”': true, // ” right double quotation mark
	'„': true, // „ double low-9 quotation mark
	'‟': true, // ‟ double high-reversed-9 quotation mark
	'″': true, // ″ double prime
	'〝': true, // 〝 reversed double prime quotation mark
	'〞': true, // 〞 double prime quotation mark
	'＂': true, // ＂ fullwidth quotation mark
}

var singleVariants = map[rune]bool{
	'‘': true, // ‘ left single quotation mark
	'’': true, // ’ right single quotation mark
	'‚': true, // ‚ single low-9 quotation mark
	'‛': true, // ‛ single high-reversed-9 quotation mark
	'′': true, // ′ prime
	'＇': true, // ＇ fullwidth apostrophe
}

// foldVariant maps a directional variant to its straight ASCII quote.
// Only variants of an enabled kind are folded; other runes pass through.
func foldVariant(r rune, doubles, singles bool) rune {
	switch {
	case doubles && doubleVariants[r]:
		return '"'
	case singles && singleVariants[r]:
		return '\''
	}
	return r
}

// containsVariant reports whether s holds any foldable variant of an
// enabled quote kind.
func containsVariant(s string, doubles, singles bool) bool {
	for _, r := range s {
		if foldVariant(r, doubles, singles) != r {
			return true
		}
	}
	return false
}
