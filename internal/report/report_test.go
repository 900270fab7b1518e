package report

import (
	"math"
	"testing"

	"github.com/sandeepkv93/studyplan/internal/model"
)

func markDone(t *testing.T, s model.Schedule, idx ...int) model.Schedule {
	t.Helper()
	for _, i := range idx {
		var err error
		s, err = model.SetStatus(s, i, model.StatusDone)
		if err != nil {
			t.Fatalf("set status %d: %v", i, err)
		}
	}
	return s
}

func TestAggregationCorrectness(t *testing.T) {
	cases := []struct {
		name string
		done []int
	}{
		{"none", nil},
		{"scattered", []int{0, 5, 9, 17, 23}},
		{"one per week", []int{1, 7, 13, 19}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := markDone(t, model.DefaultSchedule(), tc.done...)
			k := len(tc.done)
			if got := CompletedCount(s); got != k {
				t.Fatalf("completed = %d, want %d", got, k)
			}
			want := 100 * float64(k) / float64(len(s))
			if got := OverallPercentage(s); math.Abs(got-want) > 1e-9 {
				t.Fatalf("percentage = %f, want %f", got, want)
			}
			sum := 0
			for _, wc := range PerWeekCompletion(s) {
				sum += wc.Done
			}
			if sum != k {
				t.Fatalf("per-week sum = %d, want %d", sum, k)
			}
		})
	}
}

func TestWeekOneScenario(t *testing.T) {
	s, err := model.SetWeekStatus(model.DefaultSchedule(), model.WeekLabel(1), model.StatusDone)
	if err != nil {
		t.Fatalf("set week: %v", err)
	}
	sum := Summarize(s)
	if sum.Completed != 6 || sum.Pending != 18 || sum.Total != 24 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	if math.Abs(sum.Percentage-25.0) > 1e-9 {
		t.Fatalf("percentage = %f, want 25", sum.Percentage)
	}
	want := []WeekCount{
		{Week: "Semana 1", Done: 6, Total: 6},
		{Week: "Semana 2", Done: 0, Total: 6},
		{Week: "Semana 3", Done: 0, Total: 6},
		{Week: "Semana 4", Done: 0, Total: 6},
	}
	if len(sum.PerWeek) != len(want) {
		t.Fatalf("per-week len = %d", len(sum.PerWeek))
	}
	for i := range want {
		if sum.PerWeek[i] != want[i] {
			t.Fatalf("per-week[%d] = %+v, want %+v", i, sum.PerWeek[i], want[i])
		}
	}
	if sum.Fraction() != "6/24" || sum.PercentText() != "25.0%" {
		t.Fatalf("unexpected text: %q %q", sum.Fraction(), sum.PercentText())
	}
}

func TestEmptyScheduleGuard(t *testing.T) {
	sum := Summarize(nil)
	if sum.Total != 0 || sum.Percentage != 0 || len(sum.PerWeek) != 0 {
		t.Fatalf("unexpected empty summary: %+v", sum)
	}
	if sum.Fraction() != "0/0" {
		t.Fatalf("unexpected fraction: %q", sum.Fraction())
	}
}
