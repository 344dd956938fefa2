// Package corpus reads tab-separated sentence and link exports.
//
// A sentence line is `id<TAB>lang<TAB>text`; columns past the third are
// ignored. A link line is `id1<TAB>id2`; columns past the second are
// ignored. Any line that does not parse is a fatal *LineError.
package corpus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentence is one record of the sentence export.
type Sentence struct {
	ID   uint64
	Lang string
	Text string
}

// Link is a directed alignment from one sentence id to another.
type Link struct {
	Source uint64
	Target uint64
}

// ErrMalformedLine is wrapped by every *LineError.
var ErrMalformedLine = errors.New("malformed line")

// LineError reports a line that could not be parsed.
type LineError struct {
	Path string
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseSentence splits a sentence line into its record.
func ParseSentence(line string) (Sentence, error) {
	cells := strings.SplitN(line, "\t", 4)
	if len(cells) < 3 {
		return Sentence{}, fmt.Errorf("%w: want 3 columns, got %d", ErrMalformedLine, len(cells))
	}
	id, err := parseID(cells[0])
	if err != nil {
		return Sentence{}, err
	}
	return Sentence{ID: id, Lang: cells[1], Text: cells[2]}, nil
}

// ParseLink splits a link line into its record.
func ParseLink(line string) (Link, error) {
	cells := strings.SplitN(line, "\t", 3)
	if len(cells) < 2 {
		return Link{}, fmt.Errorf("%w: want 2 columns, got %d", ErrMalformedLine, len(cells))
	}
	src, err := parseID(cells[0])
	if err != nil {
		return Link{}, err
	}
	dst, err := parseID(cells[1])
	if err != nil {
		return Link{}, err
	}
	return Link{Source: src, Target: dst}, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", ErrMalformedLine, s)
	}
	return id, nil
}
