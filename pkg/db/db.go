// Package db holds the SQLite schema and writes used by the -db export.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS words (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	lang  TEXT    NOT NULL,
	word  TEXT    NOT NULL,
	count INTEGER NOT NULL,
	rank  INTEGER NOT NULL,
	UNIQUE(lang, word)
);
CREATE INDEX IF NOT EXISTS idx_words_lang_rank ON words(lang, rank);
CREATE TABLE IF NOT EXISTS pairs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	source_lang TEXT    NOT NULL,
	target_lang TEXT    NOT NULL,
	position    INTEGER NOT NULL,
	source_id   INTEGER NOT NULL,
	target_id   INTEGER NOT NULL,
	source_text TEXT    NOT NULL,
	target_text TEXT    NOT NULL,
	score       INTEGER NOT NULL,
	UNIQUE(source_lang, target_lang, source_id)
);
CREATE INDEX IF NOT EXISTS idx_pairs_langs_position ON pairs(source_lang, target_lang, position);
`

// Open opens the SQLite file at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// Single connection so ":memory:" databases are shared.
	conn.SetMaxOpenConns(1)
	if err := InitDB(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
