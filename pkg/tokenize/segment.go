package tokenize

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Segmenter tokenizes text written without spaces between words, using a
// kagome morphological model with the IPA dictionary.
type Segmenter struct {
	t *tokenizer.Tokenizer
}

// NewSegmenter loads the dictionary and returns a ready Segmenter.
func NewSegmenter() (*Segmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Segmenter{t: t}, nil
}

// Tokenize implements Tokenizer. Each token is a surface form; punctuation
// comes back as its own token and is dropped later by Words.
func (s *Segmenter) Tokenize(text string) []string {
	tokens := s.t.Tokenize(text)
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}
		result = append(result, token.Surface)
	}
	return result
}
