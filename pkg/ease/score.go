// Package ease orders sentences by lexical difficulty and pairs the
// easiest ones with a translation.
package ease

import (
	"context"
	"sort"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/frequency"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/tokenize"
)

// Scored is a sentence with its difficulty: the highest rank among its
// words.
type Scored struct {
	ID    uint64
	Text  string
	Score int
}

// Score streams path once and scores every sentence of lang against
// ranks. Sentences without any word, or with a word missing from ranks,
// are dropped. The result is sorted by ascending score; equal scores
// keep file order.
func Score(ctx context.Context, src corpus.Source, path, lang string, ranks frequency.RankTable, tok tokenize.Tokenizer) ([]Scored, error) {
	var scored []Scored
	err := src.Sentences(ctx, path, func(s corpus.Sentence) error {
		if s.Lang != lang {
			return nil
		}
		if score, ok := sentenceScore(tokenize.Words(tok.Tokenize(s.Text)), ranks); ok {
			scored = append(scored, Scored{ID: s.ID, Text: s.Text, Score: score})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	return scored, nil
}

func sentenceScore(words []string, ranks frequency.RankTable) (int, bool) {
	if len(words) == 0 {
		return 0, false
	}
	high := 0
	for _, w := range words {
		r, ok := ranks.Rank(w)
		if !ok {
			return 0, false
		}
		if r > high {
			high = r
		}
	}
	return high, true
}
