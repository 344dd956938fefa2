package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Words filters raw tokens and canonicalizes the survivors into word keys.
// Frequency counting and scoring must both go through this function;
// a word key is only comparable with keys produced the same way.
func Words(tokens []string) []string {
	upper := cases.Upper(language.Und)
	keys := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !Accept(tok) {
			continue
		}
		keys = append(keys, canonical(upper, tok))
	}
	return keys
}

// Accept reports whether a raw token can become a word key: it must be
// non-empty, contain no numeric character and no delimiter residue.
func Accept(token string) bool {
	if token == "" {
		return false
	}
	return !strings.ContainsFunc(token, func(r rune) bool {
		return unicode.IsNumber(r) || IsDelimiter(r)
	})
}

// canonical composes to NFC and applies full uppercase mapping (ß -> SS).
func canonical(upper cases.Caser, token string) string {
	return upper.String(norm.NFC.String(token))
}
