package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/studyplan/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVStore keeps the schedule in a flat file with a header row.
type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (c *CSVStore) Path() string {
	return c.path
}

func (c *CSVStore) Close() error {
	return nil
}

// Load falls back to the default schedule when the file is missing or blank.
func (c *CSVStore) Load(ctx context.Context) (model.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultSchedule(), nil
		}
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if strings.TrimSpace(string(raw)) == "" {
		return model.DefaultSchedule(), nil
	}
	rows, err := decodeRows(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	return scheduleFromRows(rows)
}

func (c *CSVStore) Save(ctx context.Context, s model.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(c.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := encodeRows(&buf, rowsFromSchedule(s)); err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

func encodeRows(w io.Writer, rows []EntryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Week, r.Day, r.Activity, r.Status}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func decodeRows(r io.Reader) ([]EntryRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	for i, col := range Header {
		if strings.TrimSpace(records[0][i]) != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMalformed, i+1, records[0][i], col)
		}
	}
	out := make([]EntryRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		out = append(out, EntryRow{
			Position: i,
			Week:     rec[0],
			Day:      rec[1],
			Activity: rec[2],
			Status:   rec[3],
		})
	}
	return out, nil
}
