package db

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ResetWords removes every exported word of lang, so an export always
// reflects a single run.
func ResetWords(db DBExecutor, lang string) error {
	_, err := db.Exec(`DELETE FROM words WHERE lang = ?`, lang)
	return err
}

// ResetPairs removes every exported pair of the from/to language pair.
func ResetPairs(db DBExecutor, from, to string) error {
	_, err := db.Exec(`DELETE FROM pairs WHERE source_lang = ? AND target_lang = ?`, from, to)
	return err
}

// InsertWord stores one frequency entry.
func InsertWord(db DBExecutor, w WordRow) error {
	if strings.TrimSpace(w.Word) == "" {
		return fmt.Errorf("word must be non-empty")
	}
	if w.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", w.Count)
	}
	_, err := db.Exec(`INSERT INTO words (lang, word, count, rank) VALUES (?, ?, ?, ?)
		ON CONFLICT(lang, word) DO UPDATE SET count = excluded.count, rank = excluded.rank`,
		w.Lang, w.Word, w.Count, w.Rank)
	if err != nil {
		return fmt.Errorf("insert word %s: %w", w.Word, err)
	}
	return nil
}

// InsertPair stores one sentence pair.
func InsertPair(db DBExecutor, p PairRow) error {
	src, err := sqlID(p.SourceID)
	if err != nil {
		return err
	}
	dst, err := sqlID(p.TargetID)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO pairs (source_lang, target_lang, position, source_id, target_id, source_text, target_text, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.SourceLang, p.TargetLang, p.Position, src, dst, p.SourceText, p.TargetText, p.Score)
	if err != nil {
		return fmt.Errorf("insert pair %d: %w", p.SourceID, err)
	}
	return nil
}

// GetWords returns the exported words of lang by rank, then word.
func GetWords(db DBExecutor, lang string) ([]WordRow, error) {
	rows, err := db.Query(`SELECT lang, word, count, rank FROM words WHERE lang = ? ORDER BY rank, word`, lang)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WordRow
	for rows.Next() {
		var w WordRow
		if err := rows.Scan(&w.Lang, &w.Word, &w.Count, &w.Rank); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPairs returns the exported pairs of from/to in position order.
func GetPairs(db DBExecutor, from, to string) ([]PairRow, error) {
	rows, err := db.Query(`SELECT source_lang, target_lang, position, source_id, target_id, source_text, target_text, score
		FROM pairs WHERE source_lang = ? AND target_lang = ? ORDER BY position`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PairRow
	for rows.Next() {
		var p PairRow
		var src, dst int64
		if err := rows.Scan(&p.SourceLang, &p.TargetLang, &p.Position, &src, &dst, &p.SourceText, &p.TargetText, &p.Score); err != nil {
			return nil, err
		}
		p.SourceID = uint64(src)
		p.TargetID = uint64(dst)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// sqlID converts a sentence id to the signed integer SQLite stores.
func sqlID(id uint64) (int64, error) {
	if id > math.MaxInt64 {
		return 0, fmt.Errorf("sentence id %d does not fit in an SQLite integer", id)
	}
	return int64(id), nil
}
