package corpus

import "context"

// Languages lists every distinct language code of path in order of first
// appearance, together with the number of sentences read.
func (s Source) Languages(ctx context.Context, path string) ([]string, int, error) {
	seen := make(map[string]bool)
	var langs []string
	total := 0

	err := s.Sentences(ctx, path, func(rec Sentence) error {
		total++
		if !seen[rec.Lang] {
			seen[rec.Lang] = true
			langs = append(langs, rec.Lang)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return langs, total, nil
}
