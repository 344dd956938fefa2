// Package tokenize splits sentence text into word-like spans and turns
// those spans into comparable word keys.
package tokenize

import (
	"strings"
	"unicode"
)

// Tokenizer splits a sentence into ordered tokens. Tokens may be empty or
// contain residue; Words decides what survives.
type Tokenizer interface {
	Tokenize(text string) []string
}

// extraDelimiters are split characters beyond whitespace and ASCII
// punctuation, mostly full-width and CJK punctuation.
var extraDelimiters = map[rune]bool{
	'。': true, '、': true, '，': true, '．': true, '！': true, '？': true,
	'：': true, '；': true, '・': true, '「': true, '」': true, '『': true,
	'』': true, '（': true, '）': true, '【': true, '】': true, '〈': true,
	'〉': true, '《': true, '》': true, '〜': true, '～': true, '…': true,
	'«': true, '»': true, '¿': true, '¡': true, '“': true, '”': true,
	'„': true, '—': true, '–': true, '　': true,
}

// IsDelimiter reports whether r separates words. The apostrophe never
// does, so contractions stay whole.
func IsDelimiter(r rune) bool {
	if r == '\'' {
		return false
	}
	if unicode.IsSpace(r) || extraDelimiters[r] {
		return true
	}
	// ASCII punctuation spans both Unicode classes: $ + < = > ^ ` | ~ are symbols.
	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// Delimiter is the default tokenizer: it splits on IsDelimiter.
type Delimiter struct{}

// Tokenize implements Tokenizer.
func (Delimiter) Tokenize(text string) []string {
	return strings.FieldsFunc(text, IsDelimiter)
}
