package report

import (
	"fmt"

	"github.com/sandeepkv93/studyplan/internal/model"
)

type WeekCount struct {
	Week  string
	Done  int
	Total int
}

type Summary struct {
	Completed  int
	Pending    int
	Total      int
	Percentage float64
	PerWeek    []WeekCount
}

// Fraction renders the completed/total pair shown under the summary metric.
func (s Summary) Fraction() string {
	return fmt.Sprintf("%d/%d", s.Completed, s.Total)
}

func (s Summary) PercentText() string {
	return fmt.Sprintf("%.1f%%", s.Percentage)
}

func CompletedCount(s model.Schedule) int {
	n := 0
	for _, e := range s {
		if e.Done() {
			n++
		}
	}
	return n
}

// PerWeekCompletion counts done entries per week label in first-seen order.
func PerWeekCompletion(s model.Schedule) []WeekCount {
	weeks := s.Weeks()
	idx := make(map[string]int, len(weeks))
	out := make([]WeekCount, len(weeks))
	for i, w := range weeks {
		idx[w] = i
		out[i].Week = w
	}
	for _, e := range s {
		wc := &out[idx[e.Week]]
		wc.Total++
		if e.Done() {
			wc.Done++
		}
	}
	return out
}

// OverallPercentage is 0 for an empty schedule.
func OverallPercentage(s model.Schedule) float64 {
	if len(s) == 0 {
		return 0
	}
	return 100 * float64(CompletedCount(s)) / float64(len(s))
}

func Summarize(s model.Schedule) Summary {
	completed := CompletedCount(s)
	return Summary{
		Completed:  completed,
		Pending:    len(s) - completed,
		Total:      len(s),
		Percentage: OverallPercentage(s),
		PerWeek:    PerWeekCompletion(s),
	}
}
