package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxLineBytes bounds a single line when Source.MaxLineBytes is unset.
const DefaultMaxLineBytes = 4 * 1024 * 1024

// Source streams lines from export files. Each call re-opens the file,
// so every pass sees the file from the start.
type Source struct {
	MaxLineBytes int
}

// Lines calls fn for every line of path in file order. n is 1-based.
// Iteration stops at the first error returned by fn, or once ctx is done.
func (s Source) Lines(ctx context.Context, path string, fn func(n int, line string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	max := s.MaxLineBytes
	if max <= 0 {
		max = DefaultMaxLineBytes
	}
	// The scanner limit is the larger of max and the initial capacity.
	initial := min(64*1024, max)
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, initial), max)

	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s after line %d: %w", path, n, err)
	}
	return nil
}

// Sentences calls fn for every sentence record of path.
func (s Source) Sentences(ctx context.Context, path string, fn func(Sentence) error) error {
	return s.Lines(ctx, path, func(n int, line string) error {
		rec, err := ParseSentence(line)
		if err != nil {
			return &LineError{Path: path, Line: n, Err: err}
		}
		return fn(rec)
	})
}

// Links calls fn for every link record of path.
func (s Source) Links(ctx context.Context, path string, fn func(Link) error) error {
	return s.Lines(ctx, path, func(n int, line string) error {
		rec, err := ParseLink(line)
		if err != nil {
			return &LineError{Path: path, Line: n, Err: err}
		}
		return fn(rec)
	})
}

// IsMalformed reports whether err was caused by an unparsable line.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedLine)
}
