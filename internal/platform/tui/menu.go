package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/anypang/internal/core"
	"github.com/vovakirdan/anypang/internal/registry"
	"github.com/vovakirdan/anypang/internal/storage"
)

// banner rows use the token glyphs of the board.
var banner = []struct {
	glyph string
	color lipgloss.Color
}{
	{"●", "12"}, {"◆", "9"}, {"▲", "10"}, {"■", "11"}, {"★", "5"},
}

var (
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	bestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
	BestChain   int
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered modes with their records from store.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, menuItem(store, g))
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// menuItem fills in the records of a mode. A broken store only hides them.
func menuItem(store *storage.Store, g registry.GameInfo) MenuItem {
	item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
	if store == nil {
		return item
	}
	if stats, err := store.GetGameStats(g.ID); err == nil {
		item.HighScore = stats.HighScore
		item.BestChain = stats.BestChain
	}
	return item
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	glyphs := make([]string, len(banner))
	for i, b := range banner {
		glyphs[i] = lipgloss.NewStyle().Foreground(b.color).Render(b.glyph)
	}

	lines := []string{
		"",
		centerText(strings.Join(glyphs, " "), m.width),
		centerText(boardTitleStyle.Render("A N Y P A N G"), m.width),
		centerText(mutedStyle.Render("Select a mode"), m.width),
		"",
	}

	var list []string
	for i, item := range m.items {
		title := "  " + item.Title
		if i == m.cursor {
			title = selectedStyle.Render("> " + item.Title)
		}
		if item.HighScore > 0 {
			title += bestStyle.Render(scorePrinter.Sprintf("   best %d  x%d", item.HighScore, item.BestChain))
		}
		list = append(list, title)
		if item.Description != "" {
			list = append(list, itemStyle.Render(mutedStyle.Render(item.Description)))
		}
		list = append(list, "")
	}
	block := lipgloss.JoinVertical(lipgloss.Left, list...)
	lines = append(lines, lipgloss.PlaceHorizontal(max(m.width, lipgloss.Width(block)), lipgloss.Center, block))

	lines = append(lines, centerText(mutedStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	return strings.Join(lines, "\n") + "\n"
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width. Styled text is measured by its
// printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
