// Package sqlite stores aggregated timetables in a local SQLite database,
// one JSON document per profile.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports"
	_ "modernc.org/sqlite"
)

type TimetableRepository struct {
	db *sql.DB
}

var _ ports.TimetableRepository = (*TimetableRepository)(nil)

func Open(dbPath string) (*TimetableRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open timetable db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply timetable schema: %w", err)
	}

	return &TimetableRepository{db: db}, nil
}

func (r *TimetableRepository) Close() error {
	return r.db.Close()
}

func (r *TimetableRepository) Load(ctx context.Context, profile domain.ProfileID) (domain.Timetable, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	var (
		version  int
		document string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT version, document FROM timetable_documents WHERE profile = ?`, string(profile),
	).Scan(&version, &document)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Timetable{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query timetable document: %w", err)
	}
	if version > documentVersion {
		return nil, fmt.Errorf("unsupported timetable document version %d (current %d)", version, documentVersion)
	}

	var doc documentJSON
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		return nil, fmt.Errorf("decode timetable document: %w", err)
	}

	return fromDocument(doc)
}

func (r *TimetableRepository) Save(ctx context.Context, profile domain.ProfileID, timetable domain.Timetable) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(toDocument(timetable))
	if err != nil {
		return fmt.Errorf("encode timetable document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO timetable_documents (profile, version, document, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(profile) DO UPDATE SET
			version = excluded.version,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		string(profile), documentVersion, string(data),
	)
	if err != nil {
		return fmt.Errorf("save timetable document: %w", err)
	}

	return nil
}
