package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sandeepkv93/studyplan/internal/model"
)

func setupSQLite(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "studyplan-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, db
}

func TestSQLiteLoadEmptyReturnsDefault(t *testing.T) {
	store, _ := setupSQLite(t)
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, model.DefaultSchedule()) {
		t.Fatalf("expected default schedule, got %#v", got)
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	store, _ := setupSQLite(t)
	ctx := context.Background()

	s, err := model.SetWeekStatus(model.DefaultSchedule(), model.WeekLabel(3), model.StatusDone)
	if err != nil {
		t.Fatalf("set week: %v", err)
	}
	s, _ = model.Toggle(s, 0)
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, s)
	}

	// A second save overwrites rather than appending.
	s, _ = model.Toggle(s, 0)
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(got) != 24 || got[0].Status != model.StatusPending {
		t.Fatalf("unexpected state after overwrite: len=%d first=%+v", len(got), got[0])
	}
}

func TestSQLiteLoadRejectsUnknownStatus(t *testing.T) {
	store, db := setupSQLite(t)
	if _, err := db.Exec(`PRAGMA ignore_check_constraints = ON`); err != nil {
		t.Fatalf("disable checks: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO schedule_entries (position, week, day, activity, status) VALUES (0, 'Semana 1', 'Segunda', 'x', 'Talvez')`); err != nil {
		t.Fatalf("seed bad row: %v", err)
	}
	_, err := store.Load(context.Background())
	if !errors.Is(err, model.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestNewSQLiteStoreNilDB(t *testing.T) {
	if _, err := NewSQLiteStore(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
