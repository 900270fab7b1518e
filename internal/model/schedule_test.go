package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultScheduleShape(t *testing.T) {
	s := DefaultSchedule()
	if len(s) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(s))
	}
	weeks := make(map[string]bool)
	days := make(map[string]bool)
	for _, e := range s {
		weeks[e.Week] = true
		days[e.Day] = true
		if e.Activity != Activities[e.Day] {
			t.Fatalf("unexpected activity for %s: %q", e.Day, e.Activity)
		}
		if e.Status != StatusPending {
			t.Fatalf("expected pending status, got %v for %s %s", e.Status, e.Week, e.Day)
		}
	}
	if len(weeks) != 4 || len(days) != 6 {
		t.Fatalf("expected 4 weeks x 6 days, got %d x %d", len(weeks), len(days))
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("default schedule should validate: %v", err)
	}
	if s[0].Week != "Semana 1" || s[0].Day != "Segunda" || s[23].Week != "Semana 4" || s[23].Day != "Sábado/Domingo" {
		t.Fatalf("unexpected ordering: first=%+v last=%+v", s[0], s[23])
	}
}

func TestToggleIsolation(t *testing.T) {
	base := DefaultSchedule()
	before := base.Clone()

	got, err := Toggle(base, 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !reflect.DeepEqual(base, before) {
		t.Fatal("toggle mutated its input")
	}
	for i := range got {
		want := before[i]
		if i == 7 {
			want.Status = StatusDone
		}
		if got[i] != want {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want)
		}
	}

	back, err := Toggle(got, 7)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !reflect.DeepEqual(back, before) {
		t.Fatal("double toggle should restore the schedule")
	}
}

func TestToggleOutOfRange(t *testing.T) {
	s := DefaultSchedule()
	for _, idx := range []int{-1, len(s)} {
		if _, err := Toggle(s, idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
}

func TestSetWeekStatus(t *testing.T) {
	s, err := SetWeekStatus(DefaultSchedule(), WeekLabel(2), StatusDone)
	if err != nil {
		t.Fatalf("set week: %v", err)
	}
	for _, e := range s {
		if (e.Week == "Semana 2") != e.Done() {
			t.Fatalf("unexpected status for %s %s: %v", e.Week, e.Day, e.Status)
		}
	}
	if _, err := SetWeekStatus(s, "Semana 9", StatusDone); !errors.Is(err, ErrUnknownWeek) {
		t.Fatalf("expected ErrUnknownWeek, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"Pendente", StatusPending, true},
		{"Concluído", StatusDone, true},
		{" Concluído ", StatusDone, true},
		{"Done", StatusPending, false},
		{"", StatusPending, false},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseStatus(%q) = %v, %v", tc.in, got, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("ParseStatus(%q) expected ErrInvalidStatus, got %v", tc.in, err)
		}
	}
	for _, st := range []Status{StatusPending, StatusDone} {
		back, err := ParseStatus(st.String())
		if err != nil || back != st {
			t.Fatalf("label round trip failed for %v: %v", st, err)
		}
	}
}

func TestScheduleValidateRejectsDuplicates(t *testing.T) {
	s := DefaultSchedule()
	s = append(s, s[0])
	if err := s.Validate(); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}

	bad := DefaultSchedule()
	bad[3].Status = Status(7)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestWeeksFirstSeenOrder(t *testing.T) {
	s := Schedule{
		{Week: "B", Day: "x"},
		{Week: "A", Day: "x"},
		{Week: "B", Day: "y"},
	}
	got := s.Weeks()
	if !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Fatalf("unexpected weeks: %v", got)
	}
}
