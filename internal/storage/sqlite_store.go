package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/studyplan/internal/model"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (r *SQLiteStore) Close() error {
	return r.db.Close()
}

// Load returns the default schedule while the table is empty.
func (r *SQLiteStore) Load(ctx context.Context) (model.Schedule, error) {
	rows, err := r.listRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return model.DefaultSchedule(), nil
	}
	return scheduleFromRows(rows)
}

func (r *SQLiteStore) Save(ctx context.Context, s model.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_entries`); err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO schedule_entries (position, week, day, activity, status)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rowsFromSchedule(s) {
		if _, err := stmt.ExecContext(ctx, row.Position, row.Week, row.Day, row.Activity, row.Status); err != nil {
			return fmt.Errorf("insert row %d: %w", row.Position+1, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteStore) listRows(ctx context.Context) ([]EntryRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT position, week, day, activity, status
		FROM schedule_entries ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EntryRow, 0)
	for rows.Next() {
		row, scanErr := scanEntryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntryRow(s scanner) (EntryRow, error) {
	var out EntryRow
	if err := s.Scan(&out.Position, &out.Week, &out.Day, &out.Activity, &out.Status); err != nil {
		return EntryRow{}, err
	}
	return out, nil
}
