package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/anypang/internal/registry"
	"github.com/vovakirdan/anypang/internal/storage"
)

const (
	minWidthForStats = 80  // below this the stats panel is dropped
	statsWidth       = 24
	maxRuns          = 100
)

var scorePrinter = message.NewPrinter(language.English)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each mode next to the mode's
// aggregate statistics.
type ScoreboardModel struct {
	modes   []registry.GameInfo
	current int
	store   *storage.Store

	runs    []storage.Run
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows
// empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if m.wide() {
		dateWidth = min(max(m.width-statsWidth-48, 12), 20)
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Chain", Width: 6},
		{Title: "Swaps", Width: 6},
		{Title: "Played", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches runs and statistics for the current mode.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID
		if m.runs, m.loadErr = m.store.TopScores(id, maxRuns); m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			scorePrinter.Sprintf("%d", r.Score),
			fmt.Sprintf("x%d", r.BestChain),
			fmt.Sprint(r.Moves),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + step + len(m.modes)) % len(m.modes)
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.renderRuns())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panelStyle.Render(m.renderStats()))
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderRuns() string {
	switch {
	case m.loadErr != nil:
		return mutedStyle.Render("Scores unavailable: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return mutedStyle.Italic(true).Padding(1, 3).
			Render("No runs recorded yet.\nMatch a few tokens to get on the board!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStats() string {
	s := m.stats
	if s == nil || s.GamesCount == 0 {
		return lipgloss.NewStyle().Width(statsWidth - 4).Render(mutedStyle.Render("No statistics"))
	}

	last := "-"
	if !s.LastPlayed.IsZero() {
		last = s.LastPlayed.Format("Jan 02 15:04")
	}
	lines := []string{
		boardTitleStyle.Render("Statistics"),
		"",
		scorePrinter.Sprintf("Runs      %d", s.GamesCount),
		scorePrinter.Sprintf("Best      %d", s.HighScore),
		scorePrinter.Sprintf("Average   %.0f", s.AvgScore),
		scorePrinter.Sprintf("Total     %d", s.TotalScore),
		fmt.Sprintf("Chain     x%d", s.BestChain),
		scorePrinter.Sprintf("Swaps     %d", s.TotalMoves),
		"",
		mutedStyle.Render("Last  " + last),
	}
	return lipgloss.NewStyle().Width(statsWidth - 4).Render(strings.Join(lines, "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
