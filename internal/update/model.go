package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/studyplan/internal/model"
	"github.com/sandeepkv93/studyplan/internal/views"
)

type View string

const (
	ViewSchedule View = "Cronograma"
	ViewProgress View = "Progresso"
	ViewCharts   View = "Gráficos"
)

const (
	appTitle   = "Cronograma de estudos"
	appTagline = "Disciplina é liberdade. Organização é poder."
	savedText  = "Progresso salvo com sucesso!"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Schedule string
	Progress string
	Charts   string
	Save     string
	Help     string
	Quit     string
}

// Saver persists the whole schedule. storage.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, s model.Schedule) error
}

// Model owns the single in-memory schedule for the lifetime of the program.
type Model struct {
	CurrentView    View
	Schedule       model.Schedule
	Cursor         int
	Dirty          bool
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	saver          Saver
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	// Bubble components used for rich TUI controls
	scheduleTable   table.Model
	commandInput    textinput.Model
	overallProgress progress.Model
	helpModel       help.Model
	detailViewport  viewport.Model
	detailSource    string
	editorWindow    int
	chartHeight     int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ToggleEntryMsg struct {
	Index int
}

type SaveRequestMsg struct{}

// NewModel builds a model without a backing store; saving reports an error.
func NewModel(s model.Schedule) Model {
	cfg := DefaultRuntimeConfig()
	m := Model{
		CurrentView: ViewSchedule,
		Schedule:    s.Clone(),
		notifier:    NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Schedule: "1",
			Progress: "2",
			Charts:   "3",
			Save:     "ctrl+s",
			Help:     "?",
			Quit:     "q",
		},
		editorWindow: cfg.EditorWindow,
		chartHeight:  cfg.ChartHeight,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(s model.Schedule, saver Saver, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel(s)
	m.saver = saver
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	if cfg.EditorWindow > 0 {
		m.editorWindow = cfg.EditorWindow
	}
	if cfg.ChartHeight > 1 {
		m.chartHeight = cfg.ChartHeight
	}
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Semana", Width: 9},
		{Title: "Dia", Width: 15},
		{Title: "Atividade", Width: 36},
		{Title: "Status", Width: 10},
	}
	m.scheduleTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(12))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.overallProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	m.helpModel = help.New()
	m.detailViewport = viewport.New(36, 10)
}

func (m *Model) syncBubbleData() {
	m.ensureCursor()

	rows := make([]table.Row, 0, len(m.Schedule))
	for _, e := range m.Schedule {
		rows = append(rows, table.Row{e.Week, e.Day, e.Activity, e.Status.String()})
	}
	m.scheduleTable.SetRows(rows)
	if len(rows) > 0 {
		m.scheduleTable.SetCursor(m.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if e, ok := m.currentEntry(); ok {
		md := fmt.Sprintf("### %s · %s\n\n%s", e.Week, e.Day, e.Activity)
		if md != m.detailSource {
			m.detailSource = md
			m.detailViewport.SetContent(views.RenderMarkdown(md))
		}
	}
}

func (m *Model) ensureCursor() {
	if m.Cursor >= len(m.Schedule) {
		m.Cursor = len(m.Schedule) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) currentEntry() (model.Entry, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Schedule) {
		return model.Entry{}, false
	}
	return m.Schedule[m.Cursor], true
}
