package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/viant/randix/embedding"
)

const embeddingsSchema = `
CREATE TABLE IF NOT EXISTS embeddings (
    token     TEXT PRIMARY KEY,
    pos       INTEGER NOT NULL,
    frequency INTEGER NOT NULL,
    vector    BLOB NOT NULL
);
`

const metaSchema = `
CREATE TABLE IF NOT EXISTS embedding_meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates the embeddings and metadata tables if they do not
// already exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(embeddingsSchema); err != nil {
		return err
	}
	_, err := db.Exec(metaSchema)
	return err
}

// Store reads and writes embedding table snapshots in a SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a SQLite-backed Store and ensures the schema exists.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Snapshot is a loaded embedding table export: the retained tokens in their
// stable order together with their frequencies and dense vectors.
type Snapshot struct {
	Dim      int
	MinCount int
	Seed     uint64
	Tokens   []string
	Freqs    map[string]int64
	Vectors  map[string][]int64
}

// Save replaces the stored snapshot with the retained contents of the given
// table. Rows are written inside one transaction in the table's stable token
// order, with a pos column preserving that order for enumeration on load.
func (s *Store) Save(ctx context.Context, table *embedding.Table) error {
	if table == nil {
		return fmt.Errorf("store: table is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM embeddings`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO embeddings(token, pos, frequency, vector) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for pos, token := range table.Tokens() {
		vec, ok := table.Get(token)
		if !ok {
			return fmt.Errorf("store: token %q disappeared during save", token)
		}
		freq, _ := table.Frequency(token)
		blob, err := EncodeVector(vec)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, token, pos, freq, blob); err != nil {
			return err
		}
	}

	meta := map[string]string{
		"dim":       strconv.Itoa(table.Dimension()),
		"min_count": strconv.Itoa(table.MinCount()),
		"seed":      strconv.FormatUint(table.Seed(), 10),
		"contexts":  strconv.FormatInt(table.Contexts(), 10),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO embedding_meta(key, value) VALUES(?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the stored snapshot back, with tokens in their saved order.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	snap := &Snapshot{
		Freqs:   make(map[string]int64),
		Vectors: make(map[string][]int64),
	}
	row := s.db.QueryRowContext(ctx, `SELECT value FROM embedding_meta WHERE key = 'dim'`)
	var dim string
	switch err := row.Scan(&dim); err {
	case nil:
		if snap.Dim, err = strconv.Atoi(dim); err != nil {
			return nil, fmt.Errorf("store: invalid dim metadata %q: %w", dim, err)
		}
	case sql.ErrNoRows:
		// Empty database: an empty snapshot, not an error.
		return snap, nil
	default:
		return nil, err
	}
	row = s.db.QueryRowContext(ctx, `SELECT value FROM embedding_meta WHERE key = 'min_count'`)
	var minCount string
	if err := row.Scan(&minCount); err == nil {
		if snap.MinCount, err = strconv.Atoi(minCount); err != nil {
			return nil, fmt.Errorf("store: invalid min_count metadata %q: %w", minCount, err)
		}
	} else if err != sql.ErrNoRows {
		return nil, err
	}
	row = s.db.QueryRowContext(ctx, `SELECT value FROM embedding_meta WHERE key = 'seed'`)
	var seed string
	if err := row.Scan(&seed); err == nil {
		if snap.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("store: invalid seed metadata %q: %w", seed, err)
		}
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT token, frequency, vector FROM embeddings ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var token string
		var freq int64
		var blob []byte
		if err := rows.Scan(&token, &freq, &blob); err != nil {
			return nil, err
		}
		vec, err := DecodeVector(blob)
		if err != nil {
			return nil, err
		}
		if len(vec) != snap.Dim {
			return nil, fmt.Errorf("store: token %q vector dimension %d, want %d", token, len(vec), snap.Dim)
		}
		snap.Tokens = append(snap.Tokens, token)
		snap.Freqs[token] = freq
		snap.Vectors[token] = vec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}
