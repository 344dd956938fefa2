package ease

import "github.com/tomcumming/tatoeba-easy-translations/pkg/links"

// Pair is one output row: a scored sentence and its first translation.
type Pair struct {
	SourceID   uint64
	TargetID   uint64
	SourceText string
	TargetText string
	Score      int
}

// Compose walks scored in order and calls emit for every sentence whose
// first linked translation has text. It returns how many sentences were
// skipped for lack of a translation. An emit error stops the walk.
func Compose(scored []Scored, m links.Map, texts map[uint64]string, emit func(Pair) error) (int, error) {
	skipped := 0
	for _, s := range scored {
		targetID, ok := m.First(s.ID)
		if !ok {
			skipped++
			continue
		}
		text, ok := texts[targetID]
		if !ok {
			skipped++
			continue
		}
		if err := emit(Pair{
			SourceID:   s.ID,
			TargetID:   targetID,
			SourceText: s.Text,
			TargetText: text,
			Score:      s.Score,
		}); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
