package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/patterndex/model"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY,
	checksum   TEXT NOT NULL,
	title      TEXT NOT NULL,
	artist     TEXT NOT NULL,
	version    TEXT NOT NULL,
	key_count  INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	body       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_checksum ON reports (checksum);
CREATE INDEX IF NOT EXISTS reports_created_at ON reports (created_at);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveReport(ctx context.Context, r model.Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report %s: %w", r.ID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO reports (id, checksum, title, artist, version, key_count, created_at, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Checksum, r.Title, r.Artist, r.Version, r.KeyCount, r.CreatedAt.UnixNano(), string(body))
	if err != nil {
		return fmt.Errorf("saving report %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetReport(ctx context.Context, id string) (model.Report, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM reports WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Report{}, fmt.Errorf("loading report %s: %w", id, err)
	}
	return decodeReport(body)
}

func (s *SQLiteStore) FindByChecksum(ctx context.Context, checksum string) ([]model.Report, error) {
	return s.query(ctx,
		`SELECT body FROM reports WHERE checksum = ? ORDER BY created_at DESC`, checksum)
}

func (s *SQLiteStore) ListReports(ctx context.Context, limit int) ([]model.Report, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.query(ctx, `SELECT body FROM reports ORDER BY created_at DESC LIMIT ?`, limit)
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]model.Report, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var res []model.Report
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		r, err := decodeReport(body)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func decodeReport(body string) (model.Report, error) {
	var r model.Report
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return r, fmt.Errorf("decoding report: %w", err)
	}
	return r, nil
}
