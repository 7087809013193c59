// Package textcase strips formatting from pasted text and changes its casing.
package textcase

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects a case conversion.
type Mode string

const (
	// ModeSentence lower-cases the text and capitalizes the first letter of each sentence.
	ModeSentence Mode = "sentence"
	// ModeUpper upper-cases the whole text.
	ModeUpper Mode = "upper"
	// ModeLower lower-cases the whole text.
	ModeLower Mode = "lower"
)

// ErrUnknownMode indicates an unsupported conversion mode.
var ErrUnknownMode = errors.New("unknown conversion mode")

var (
	tagPattern           = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
	sentenceStartPattern = regexp.MustCompile(`^\w|[.!?]\s*\w`)
)

// Modes lists the supported modes.
func Modes() []Mode {
	return []Mode{ModeSentence, ModeUpper, ModeLower}
}

// ParseMode converts a user-supplied name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Errorf("%w: %q", ErrUnknownMode, s)
}

// Strip removes tag-like substrings, collapses whitespace runs into a single
// space and trims the result.
func Strip(text string) string {
	text = tagPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Convert strips text and applies the casing selected by mode.
// In sentence mode the first word character of the text and the first word
// character after '.', '!' or '?' are upper-cased.
func Convert(text string, mode Mode) (string, error) {
	clean := Strip(text)

	// Casers carry state, so each call gets its own.
	switch mode {
	case ModeSentence:
		lower := cases.Lower(language.Und).String(clean)
		return sentenceStartPattern.ReplaceAllStringFunc(lower, cases.Upper(language.Und).String), nil
	case ModeUpper:
		return cases.Upper(language.Und).String(clean), nil
	case ModeLower:
		return cases.Lower(language.Und).String(clean), nil
	default:
		return "", errors.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
