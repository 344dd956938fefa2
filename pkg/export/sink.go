package export

import (
	"context"
	"database/sql"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/db"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/ease"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/frequency"
)

// DefaultBatchSize is the number of rows committed per transaction.
const DefaultBatchSize = 500

// WriteWords replaces the exported frequency table of lang with entries.
//
// The old rows are deleted in the first batch's transaction, so a failure
// in that batch leaves the previous export intact. A failure in a later
// batch leaves the batches before it committed.
func WriteWords(ctx context.Context, conn *sql.DB, lang string, entries []frequency.Entry, batchSize int) error {
	bw := NewBatchWriter(ctx, conn, batchSize)
	if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return db.ResetWords(tx, lang)
	}); err != nil {
		_ = bw.Close()
		return err
	}
	for _, e := range entries {
		row := db.WordRow{Lang: lang, Word: e.Word, Count: e.Count, Rank: e.Rank}
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			return db.InsertWord(tx, row)
		}); err != nil {
			_ = bw.Close()
			return err
		}
	}
	return bw.Close()
}

// PairSink stores emitted pairs in output order. Earlier pairs of the same
// language pair are deleted in the first batch's transaction.
type PairSink struct {
	bw   *BatchWriter
	from string
	to   string
	pos  int
}

// NewPairSink returns a sink that replaces the pairs of from/to.
func NewPairSink(ctx context.Context, conn *sql.DB, from, to string, batchSize int) (*PairSink, error) {
	bw := NewBatchWriter(ctx, conn, batchSize)
	if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return db.ResetPairs(tx, from, to)
	}); err != nil {
		_ = bw.Close()
		return nil, err
	}
	return &PairSink{bw: bw, from: from, to: to}, nil
}

// Write queues p at the next position.
func (s *PairSink) Write(p ease.Pair) error {
	row := db.PairRow{
		SourceLang: s.from,
		TargetLang: s.to,
		Position:   s.pos,
		SourceID:   p.SourceID,
		TargetID:   p.TargetID,
		SourceText: p.SourceText,
		TargetText: p.TargetText,
		Score:      p.Score,
	}
	if err := s.bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return db.InsertPair(tx, row)
	}); err != nil {
		return err
	}
	s.pos++
	return nil
}

// Len reports how many pairs were queued.
func (s *PairSink) Len() int { return s.pos }

// Close commits the remaining pairs.
func (s *PairSink) Close() error {
	return s.bw.Close()
}
