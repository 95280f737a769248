package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/checkmotor/checkmotor/model"
)

// SQLite keeps each collection as one JSON document in a key/value table on
// the local device.
type SQLite struct {
	db *sql.DB
}

func Open(path string) (s *SQLite, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open")
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store: pragma")
	}

	// db tuning options
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store: migrate")
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) LoadTemplates(ctx context.Context) ([]model.Template, error) {
	templates := []model.Template{}
	err := s.load(ctx, templatesKey, &templates)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Normalize()
	}
	return templates, nil
}

func (s *SQLite) SaveTemplates(ctx context.Context, templates []model.Template) error {
	return s.save(ctx, templatesKey, templates)
}

func (s *SQLite) LoadSubmissions(ctx context.Context) ([]model.Submission, error) {
	submissions := []model.Submission{}
	err := s.load(ctx, submissionsKey, &submissions)
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *SQLite) SaveSubmissions(ctx context.Context, submissions []model.Submission) error {
	return s.save(ctx, submissionsKey, submissions)
}

func (s *SQLite) load(ctx context.Context, key string, out any) error {
	var doc string
	err := s.db.
		QueryRowContext(ctx, `SELECT document FROM collection WHERE key = ?`, key).
		Scan(&doc)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "store: read "+key)
	}

	return errors.Wrap(json.Unmarshal([]byte(doc), out), "store: decode "+key)
}

func (s *SQLite) save(ctx context.Context, key string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "store: encode "+key)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collection (key, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		key,
		string(doc),
		time.Now(),
	)
	return errors.Wrap(err, "store: write "+key)
}
