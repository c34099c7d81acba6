package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reLineBreaks  = regexp.MustCompile(`\r\n?|[\f\v\x{0085}\x{2028}\x{2029}]`)
	reMultiSpace  = regexp.MustCompile(` {2,}`)
	reHyphenBreak = regexp.MustCompile(`(\p{L})-\n(\p{Ll})`)
	reMultiBlank  = regexp.MustCompile(`\n{3,}`)
)

// NormalizedText is resume text in canonical form. Lower is Text lower-cased.
type NormalizedText struct {
	Text  string
	Lower string
}

// Normalize cleans raw PDF text: NFKC folding, unified line breaks, joined
// hyphenation, no control characters, single spaces and at most one blank
// line between blocks.
func Normalize(raw string) NormalizedText {
	if raw == "" {
		return NormalizedText{}
	}

	s := norm.NFKC.String(raw)
	s = reLineBreaks.ReplaceAllString(s, "\n")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == utf8.RuneError:
			return -1
		case unicode.IsSpace(r):
			return ' '
		case !unicode.IsPrint(r):
			return -1
		}
		return r
	}, s)
	s = reMultiSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")

	s = reHyphenBreak.ReplaceAllString(s, "$1$2")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	return NormalizedText{Text: s, Lower: strings.ToLower(s)}
}
