// Package export writes frequency tables and sentence pairs to SQLite.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// WriteFunc is a callback that performs database writes inside a transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// BatchWriter buffers write operations and commits them in batches, one
// transaction per batch, on a background committer.
type BatchWriter struct {
	mu     sync.Mutex
	buf    []WriteFunc
	cap    int
	closed bool
	wg     sync.WaitGroup

	commitCh chan []WriteFunc
	db       *sql.DB
	ctx      context.Context

	errMu   sync.Mutex
	lastErr error
}

// NewBatchWriter creates a BatchWriter that commits every batchSize writes.
func NewBatchWriter(ctx context.Context, db *sql.DB, batchSize int) *BatchWriter {
	if batchSize <= 0 {
		batchSize = 500
	}
	bw := &BatchWriter{
		buf:      make([]WriteFunc, 0, batchSize),
		cap:      batchSize,
		commitCh: make(chan []WriteFunc, 2),
		db:       db,
		ctx:      ctx,
	}
	bw.wg.Add(1)
	go bw.committer()
	return bw
}

// Submit enqueues a write. It returns the first commit error seen so far,
// so callers stop producing once a batch has failed.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	if err := bw.Err(); err != nil {
		return err
	}
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		bw.flushLocked()
	}
	return nil
}

// Err returns the first commit error, if any.
func (bw *BatchWriter) Err() error {
	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.lastErr
}

// flushLocked assumes bw.mu is held. Sending blocks while the committer is
// busy, which gives Submit backpressure.
func (bw *BatchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.cap)
	bw.commitCh <- batch
}

func (bw *BatchWriter) committer() {
	defer bw.wg.Done()
	for batch := range bw.commitCh {
		if bw.Err() != nil {
			// Drop batches after the first failure.
			continue
		}
		if err := bw.executeBatch(batch); err != nil {
			bw.errMu.Lock()
			if bw.lastErr == nil {
				bw.lastErr = err
			}
			bw.errMu.Unlock()
		}
	}
}

func (bw *BatchWriter) executeBatch(batch []WriteFunc) error {
	tx, err := bw.db.BeginTx(bw.ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range batch {
		if err := w(bw.ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch (%d items): %w", len(batch), err)
	}
	return nil
}

// Close commits any buffered writes, waits for the committer and returns
// the first commit error.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrBatchWriterClosed
	}
	bw.closed = true
	bw.flushLocked()
	bw.mu.Unlock()

	close(bw.commitCh)
	bw.wg.Wait()
	return bw.Err()
}

var ErrBatchWriterClosed = &BatchWriterError{"batch writer closed"}

type BatchWriterError struct{ msg string }

func (e *BatchWriterError) Error() string { return e.msg }
