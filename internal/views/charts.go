package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	chartColumnWidth  = 11
	breakdownBarWidth = 40
	defaultChartRows  = 7
)

var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true)
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
)

type WeekPoint struct {
	Week  string
	Done  int
	Total int
}

type LineChartData struct {
	Title  string
	Points []WeekPoint
	Height int
}

type BreakdownData struct {
	Title     string
	Completed int
	Pending   int
}

type SummaryData struct {
	Percent      string
	Fraction     string
	ProgressView string
}

// RenderLineChart plots completed tasks per week as markers joined by a line.
func RenderLineChart(data LineChartData) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(data.Title) + "\n")
	if len(data.Points) == 0 {
		b.WriteString("(no data)")
		return b.String()
	}

	height := data.Height
	if height < 2 {
		height = defaultChartRows
	}
	maxY := 1
	for _, p := range data.Points {
		if p.Total > maxY {
			maxY = p.Total
		}
		if p.Done > maxY {
			maxY = p.Done
		}
	}

	width := len(data.Points) * chartColumnWidth
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	rowFor := func(v int) int {
		return int(math.Round(float64(v) / float64(maxY) * float64(height-1)))
	}
	xs := make([]int, len(data.Points))
	ys := make([]int, len(data.Points))
	for i, p := range data.Points {
		xs[i] = i*chartColumnWidth + chartColumnWidth/2
		ys[i] = rowFor(p.Done)
	}
	for i := 1; i < len(xs); i++ {
		x0, x1, y0, y1 := xs[i-1], xs[i], ys[i-1], ys[i]
		for x := x0 + 1; x < x1; x++ {
			t := float64(x-x0) / float64(x1-x0)
			y := int(math.Round(float64(y0) + t*float64(y1-y0)))
			grid[y][x] = '·'
		}
	}
	for i := range xs {
		grid[ys[i]][xs[i]] = '●'
	}

	lastLabel := -1
	for r := height - 1; r >= 0; r-- {
		value := int(math.Round(float64(r) / float64(height-1) * float64(maxY)))
		label := "    │"
		if value != lastLabel {
			label = fmt.Sprintf("%3d ┤", value)
			lastLabel = value
		}
		b.WriteString(label + string(grid[r]) + "\n")
	}
	b.WriteString("    └" + strings.Repeat("─", width) + "\n")

	weekCells := make([]string, 0, len(data.Points))
	countCells := make([]string, 0, len(data.Points))
	cell := lipgloss.NewStyle().Width(chartColumnWidth).Align(lipgloss.Center)
	for _, p := range data.Points {
		weekCells = append(weekCells, cell.Render(p.Week))
		countCells = append(countCells, cell.Render(fmt.Sprintf("%d/%d", p.Done, p.Total)))
	}
	b.WriteString("     " + lipgloss.JoinHorizontal(lipgloss.Top, weekCells...) + "\n")
	b.WriteString("     " + lipgloss.JoinHorizontal(lipgloss.Top, countCells...))
	return b.String()
}

// RenderBreakdown draws the done/pending split as one proportional bar with a legend.
func RenderBreakdown(data BreakdownData) string {
	total := data.Completed + data.Pending
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(data.Title) + "\n")
	if total == 0 {
		b.WriteString("(no data)")
		return b.String()
	}
	doneCells := int(math.Round(float64(data.Completed) / float64(total) * breakdownBarWidth))
	b.WriteString(doneStyle.Render(strings.Repeat("█", doneCells)))
	b.WriteString(pendingStyle.Render(strings.Repeat("░", breakdownBarWidth-doneCells)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s Concluídas %d (%.1f%%)\n", doneStyle.Render("●"), data.Completed, share(data.Completed, total)))
	b.WriteString(fmt.Sprintf("%s Pendentes %d (%.1f%%)", pendingStyle.Render("●"), data.Pending, share(data.Pending, total)))
	return b.String()
}

func RenderSummary(data SummaryData) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render("Progresso geral") + "\n")
	b.WriteString(fmt.Sprintf("Tarefas concluídas %s\n", data.Percent))
	b.WriteString(data.Fraction + "\n")
	b.WriteString(data.ProgressView)
	return strings.TrimSpace(b.String())
}

func share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
