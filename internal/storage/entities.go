package storage

import (
	"fmt"

	"github.com/sandeepkv93/studyplan/internal/model"
)

// Header is the persisted column set, in file order.
var Header = []string{"Semana", "Dia", "Atividade", "Status"}

type EntryRow struct {
	Position int
	Week     string
	Day      string
	Activity string
	Status   string
}

func rowFromEntry(pos int, e model.Entry) EntryRow {
	return EntryRow{
		Position: pos,
		Week:     e.Week,
		Day:      e.Day,
		Activity: e.Activity,
		Status:   e.Status.String(),
	}
}

func (r EntryRow) toEntry() (model.Entry, error) {
	st, err := model.ParseStatus(r.Status)
	if err != nil {
		return model.Entry{}, fmt.Errorf("row %d: %w", r.Position+1, err)
	}
	return model.Entry{
		Week:     r.Week,
		Day:      r.Day,
		Activity: r.Activity,
		Status:   st,
	}, nil
}

func rowsFromSchedule(s model.Schedule) []EntryRow {
	out := make([]EntryRow, 0, len(s))
	for i, e := range s {
		out = append(out, rowFromEntry(i, e))
	}
	return out
}

func scheduleFromRows(rows []EntryRow) (model.Schedule, error) {
	out := make(model.Schedule, 0, len(rows))
	for _, r := range rows {
		e, err := r.toEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return out, nil
}
