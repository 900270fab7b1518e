package update

import (
	"strings"

	"github.com/sandeepkv93/studyplan/internal/report"
	"github.com/sandeepkv93/studyplan/internal/views"
)

const lineChartTitle = "Evolução das tarefas concluídas por semana"

func (m Model) renderChartsView() string {
	sum := report.Summarize(m.Schedule)

	points := make([]views.WeekPoint, 0, len(sum.PerWeek))
	for _, w := range sum.PerWeek {
		points = append(points, views.WeekPoint{Week: w.Week, Done: w.Done, Total: w.Total})
	}

	sections := []string{
		views.RenderSummary(views.SummaryData{
			Percent:      sum.PercentText(),
			Fraction:     sum.Fraction(),
			ProgressView: m.overallProgress.ViewAs(clampPercent(sum.Percentage / 100)),
		}),
		views.RenderLineChart(views.LineChartData{
			Title:  lineChartTitle,
			Points: points,
			Height: m.chartHeight,
		}),
		views.RenderBreakdown(views.BreakdownData{
			Title:     "Concluídas x Pendentes",
			Completed: sum.Completed,
			Pending:   sum.Pending,
		}),
	}
	return strings.Join(sections, "\n\n")
}
