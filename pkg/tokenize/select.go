package tokenize

import "fmt"

// Kind names one of the available tokenizer implementations.
type Kind int

const (
	KindDelimiter Kind = iota // split on whitespace and punctuation
	KindSegmenter             // dictionary-based word segmentation
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDelimiter:
		return "delimiter"
	case KindSegmenter:
		return "segmenter"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DefaultSegmented lists the language codes segmented by default.
var DefaultSegmented = []string{"jpn"}

// Selector maps language codes to a tokenizer kind. Codes not listed fall
// back to KindDelimiter.
type Selector struct {
	segmented map[string]bool
}

// NewSelector returns a Selector that segments the given language codes.
func NewSelector(segmented []string) *Selector {
	m := make(map[string]bool, len(segmented))
	for _, code := range segmented {
		m[code] = true
	}
	return &Selector{segmented: m}
}

// Kind returns the tokenizer kind for lang.
func (s *Selector) Kind(lang string) Kind {
	if s.segmented[lang] {
		return KindSegmenter
	}
	return KindDelimiter
}

// For builds the tokenizer for lang. Call it once per run; building a
// Segmenter loads a full dictionary.
func (s *Selector) For(lang string) (Tokenizer, error) {
	switch k := s.Kind(lang); k {
	case KindSegmenter:
		seg, err := NewSegmenter()
		if err != nil {
			return nil, fmt.Errorf("create segmenter for %q: %w", lang, err)
		}
		return seg, nil
	case KindDelimiter:
		return Delimiter{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer kind %v", k)
	}
}
