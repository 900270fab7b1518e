package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid entry status")
	ErrIndexOutOfRange = errors.New("model: entry index out of range")
	ErrUnknownWeek     = errors.New("model: unknown week")
	ErrDuplicateEntry  = errors.New("model: duplicate week/day entry")
)

// WeekCount is the number of weeks in the default study plan.
const WeekCount = 4

// Days lists the fixed study days in schedule order. The weekend is one slot.
var Days = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado/Domingo"}

// Activities maps each day to its study activity. The text is identical for every week.
var Activities = map[string]string{
	"Segunda":        "Python - Funções Matemáticas (Cálculo, Derivadas, Integrais)",
	"Terça":          "Python - Vetores e Matrizes (Álgebra Linear)",
	"Quarta":         "Python - Distribuições Estatísticas (Normal, Binomial, etc.)",
	"Quinta":         "Python - Estatísticas Descritivas (Média, Desvio Padrão, etc.)",
	"Sexta":          "Revisão e Prática (Consolidação de conceitos)",
	"Sábado/Domingo": "Projeto prático com Dados Reais (Análise e Automação)",
}

type Status int

const (
	StatusPending Status = iota
	StatusDone
)

const (
	labelPending = "Pendente"
	labelDone    = "Concluído"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone:
		return true
	default:
		return false
	}
}

// String returns the persisted label for the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return labelPending
	case StatusDone:
		return labelDone
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// ParseStatus accepts only the two persisted labels.
func ParseStatus(raw string) (Status, error) {
	switch strings.TrimSpace(raw) {
	case labelPending:
		return StatusPending, nil
	case labelDone:
		return StatusDone, nil
	default:
		return StatusPending, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// StatusLabels returns the labels in control order: Pending first.
func StatusLabels() []string {
	return []string{labelPending, labelDone}
}

type Entry struct {
	Week     string
	Day      string
	Activity string
	Status   Status
}

func (e Entry) Done() bool {
	return e.Status == StatusDone
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.Week) == "" {
		return errors.New("model: entry week is required")
	}
	if strings.TrimSpace(e.Day) == "" {
		return errors.New("model: entry day is required")
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(e.Status))
	}
	return nil
}

type Schedule []Entry

func WeekLabel(n int) string {
	return fmt.Sprintf("Semana %d", n)
}

// DefaultSchedule builds the first-run plan: every week crossed with every day, all pending.
func DefaultSchedule() Schedule {
	out := make(Schedule, 0, WeekCount*len(Days))
	for week := 1; week <= WeekCount; week++ {
		for _, day := range Days {
			out = append(out, Entry{
				Week:     WeekLabel(week),
				Day:      day,
				Activity: Activities[day],
				Status:   StatusPending,
			})
		}
	}
	return out
}

func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

func (s Schedule) Validate() error {
	seen := make(map[string]bool, len(s))
	for i, e := range s {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		key := e.Week + "\x00" + e.Day
		if seen[key] {
			return fmt.Errorf("%w: %s %s", ErrDuplicateEntry, e.Week, e.Day)
		}
		seen[key] = true
	}
	return nil
}

// Weeks returns the distinct week labels in first-seen order.
func (s Schedule) Weeks() []string {
	out := make([]string, 0, WeekCount)
	seen := make(map[string]bool, WeekCount)
	for _, e := range s {
		if seen[e.Week] {
			continue
		}
		seen[e.Week] = true
		out = append(out, e.Week)
	}
	return out
}

func Toggle(s Schedule, i int) (Schedule, error) {
	if i < 0 || i >= len(s) {
		return s, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return SetStatus(s, i, s[i].Status.Toggle())
}

func SetStatus(s Schedule, i int, st Status) (Schedule, error) {
	if i < 0 || i >= len(s) {
		return s, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if !st.IsValid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidStatus, int(st))
	}
	out := s.Clone()
	out[i].Status = st
	return out, nil
}

func SetWeekStatus(s Schedule, week string, st Status) (Schedule, error) {
	if !st.IsValid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidStatus, int(st))
	}
	out := s.Clone()
	matched := 0
	for i := range out {
		if out[i].Week == week {
			out[i].Status = st
			matched++
		}
	}
	if matched == 0 {
		return s, fmt.Errorf("%w: %q", ErrUnknownWeek, week)
	}
	return out, nil
}
