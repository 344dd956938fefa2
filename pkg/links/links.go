// Package links resolves sentence alignments between two languages and
// fetches the text of the linked translations.
package links

import (
	"context"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
)

// Map associates a source sentence id with its linked target ids in link
// file order. The first target is the one used for output.
type Map map[uint64][]uint64

// First returns the first target linked to id.
func (m Map) First(id uint64) (uint64, bool) {
	targets := m[id]
	if len(targets) == 0 {
		return 0, false
	}
	return targets[0], true
}

// Targets returns the set of every target id referenced by m.
func (m Map) Targets() map[uint64]bool {
	set := make(map[uint64]bool)
	for _, targets := range m {
		for _, id := range targets {
			set[id] = true
		}
	}
	return set
}

// Resolve reads the sentence ids of both languages from corpusPath, then
// keeps every link from linkPath that points from a from-language
// sentence to a to-language sentence. Duplicate links are kept.
func Resolve(ctx context.Context, src corpus.Source, corpusPath, linkPath, from, to string) (Map, error) {
	fromIDs := make(map[uint64]bool)
	toIDs := make(map[uint64]bool)

	err := src.Sentences(ctx, corpusPath, func(s corpus.Sentence) error {
		switch s.Lang {
		case from:
			fromIDs[s.ID] = true
		case to:
			toIDs[s.ID] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m := make(Map)
	err = src.Links(ctx, linkPath, func(l corpus.Link) error {
		if fromIDs[l.Source] && toIDs[l.Target] {
			m[l.Source] = append(m[l.Source], l.Target)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Translations streams corpusPath once and returns the text of every
// sentence referenced as a target in m.
func Translations(ctx context.Context, src corpus.Source, corpusPath string, m Map) (map[uint64]string, error) {
	required := m.Targets()
	texts := make(map[uint64]string, len(required))

	err := src.Sentences(ctx, corpusPath, func(s corpus.Sentence) error {
		if required[s.ID] {
			texts[s.ID] = s.Text
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return texts, nil
}
