// Package tui provides the terminal UI for playing the game locally or
// over SSH.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vkuzmin/twenty48/internal/config"
	"github.com/vkuzmin/twenty48/internal/game"
	"github.com/vkuzmin/twenty48/internal/storage"
)

// Model is the Bubble Tea model driving one game session. 2048 is
// turn-based, so there is no tick loop: each key press maps directly to
// a move.
type Model struct {
	session *game.Session
	store   *storage.Store
	rules   config.RulesConfig
	keys    KeyMap
	help    help.Model

	seed      int64
	width     int
	height    int
	best      int
	startedAt time.Time

	winShown    bool // win banner acknowledged or showing
	keepGoing   bool // player chose to continue past the win target
	resultSaved bool
	quitting    bool
}

// NewModel creates a model with a fresh session. A zero seed falls back
// to the current time.
func NewModel(store *storage.Store, rules config.RulesConfig, seed int64, width, height int) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		store:  store,
		rules:  rules,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		seed:   seed,
		width:  width,
		height: height,
	}
	m.startGame()

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}

	return m
}

// startGame resets the session from the current seed.
func (m *Model) startGame() {
	rng := rand.New(rand.NewSource(m.seed))
	session, err := game.New(rng,
		game.WithWinTarget(m.rules.WinTarget),
		game.WithFourProb(m.rules.FourProb),
	)
	if err != nil {
		// Rules are validated at load time; a failure here means a
		// programming error. Fall back to default rules so the UI
		// stays alive, but don't hide it.
		log.Error("invalid game rules, falling back to defaults", "error", err)
		session, _ = game.New(rng)
	}

	m.session = session
	m.startedAt = time.Now()
	m.winShown = false
	m.keepGoing = false
	m.resultSaved = false
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.saveResult()
		m.seed = time.Now().UnixNano()
		m.startGame()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Win banner waits for an explicit continue.
	if m.winBannerActive() {
		if msg.String() == "c" && m.rules.KeepPlaying {
			m.keepGoing = true
		}
		return m, nil
	}

	if m.session.GameOver() {
		return m, nil
	}

	var dir game.Direction
	switch {
	case key.Matches(msg, m.keys.Up):
		dir = game.DirUp
	case key.Matches(msg, m.keys.Down):
		dir = game.DirDown
	case key.Matches(msg, m.keys.Left):
		dir = game.DirLeft
	case key.Matches(msg, m.keys.Right):
		dir = game.DirRight
	default:
		return m, nil
	}

	// A rejected move is a silent no-op; the board simply doesn't change.
	if moved, err := m.session.Execute(dir); err != nil || !moved {
		return m, nil
	}

	if m.session.Score() > m.best {
		m.best = m.session.Score()
	}

	if m.session.Won() && !m.winShown {
		m.winShown = true
	}

	if m.session.GameOver() {
		m.saveResult()
	}

	return m, nil
}

// winBannerActive reports whether the win overlay is blocking input.
func (m Model) winBannerActive() bool {
	return m.winShown && !m.keepGoing && !m.session.GameOver()
}

// saveResult persists the finished (or abandoned) game exactly once.
func (m *Model) saveResult() {
	if m.resultSaved || m.store == nil || m.session.Moves() == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveResult(storage.Result{
		Score:    m.session.Score(),
		MaxTile:  m.session.MaxTile(),
		Moves:    m.session.Moves(),
		Won:      m.session.Won(),
		Duration: int(time.Since(m.startedAt).Seconds()),
	})
	m.resultSaved = true
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hud := renderHUD(m.session.Score(), m.best, m.session.MaxTile(), m.session.Moves())
	board := renderBoard(m.session.Board())

	var overlay string
	switch {
	case m.session.GameOver():
		overlay = renderOverlay("game over", "n: new game  q: quit")
	case m.winBannerActive():
		hint := "n: new game  q: quit"
		if m.rules.KeepPlaying {
			hint = "c: keep going  " + hint
		}
		overlay = renderOverlay("you win!", hint)
	}

	sections := []string{hud, board}
	if overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for a local game.
func Run(store *storage.Store, rules config.RulesConfig, seed int64, width, height int) error {
	model := NewModel(store, rules, seed, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
