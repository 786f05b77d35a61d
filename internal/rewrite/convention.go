package rewrite

import "fmt"

// Convention holds the directional glyphs for a target typographic style.
type Convention struct {
	Name        string
	DoubleOpen  rune
	DoubleClose rune
	SingleOpen  rune
	SingleClose rune
}

// Built-in conventions. Curly is the default and matches the glyphs used
// for quotations in Chinese typesetting.
var (
	Curly = Convention{
		Name:        "curly",
		DoubleOpen:  '“', // “
		DoubleClose: '”', // ”
		SingleOpen:  '‘', // ‘
		SingleClose: '’', // ’
	}

	Corner = Convention{
		Name:        "corner",
		DoubleOpen:  '「', // 「
		DoubleClose: '」', // 」
		SingleOpen:  '『', // 『
		SingleClose: '』', // 』
	}

	Angle = Convention{
		Name:        "angle",
		DoubleOpen:  '«', // «
		DoubleClose: '»', // »
		SingleOpen:  '‹', // ‹
		SingleClose: '›', // ›
	}

	German = Convention{
		Name:        "german",
		DoubleOpen:  '„', // „
		DoubleClose: '“', // “
		SingleOpen:  '‚', // ‚
		SingleClose: '‘', // ‘
	}
)

var conventions = map[string]Convention{
	"curly":  Curly,
	"corner": Corner,
	"angle":  Angle,
	"german": German,
}

// ParseConvention looks up a convention by name.
func ParseConvention(name string) (Convention, error) {
	c, ok := conventions[name]
	if !ok {
		return Convention{}, fmt.Errorf("unknown style '%s': must be one of: angle, corner, curly, german", name)
	}
	return c, nil
}

// ConventionNames returns the names of all built-in conventions.
func ConventionNames() []string {
	return []string{"angle", "corner", "curly", "german"}
}
