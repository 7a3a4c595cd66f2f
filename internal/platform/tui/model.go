package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/multiplayer"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// GameOptions configures a GameModel beyond the game itself.
type GameOptions struct {
	Store   *storage.Store // nil disables scores and match history
	Logger  *log.Logger    // nil discards logs
	Mode    multiplayer.MatchMode
	Session multiplayer.SessionID
	Bell    bool         // Ring the terminal bell on hits
	Effects EffectPlayer // Extra effect player next to the flash caption

	// QuitOnBack ends the program on Back instead of flagging BackToMenu.
	QuitOnBack bool
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	results    multiplayer.MatchResultSaver
	logger     *log.Logger
	config     core.RuntimeConfig
	opts       GameOptions
	match      *multiplayer.Match
	flash      *Flash
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	quitting    bool
	backToMenu  bool
	scoreSaved  bool // Whether score has been saved for current game over
	resultSaved bool // Whether the current match has been recorded
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Session == "" {
		opts.Session = multiplayer.LocalSession
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		config:     cfg,
		opts:       opts,
		match:      multiplayer.NewMatch(opts.Mode, opts.Session),
		flash:      NewFlash(opts.Bell),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if opts.Store != nil {
		m.results = opts.Store
	}
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logMatchStart()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishMatch(multiplayer.MatchEndAbandoned)
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves only from a paused or finished game.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.finishMatch(multiplayer.MatchEndAbandoned)
		m.backToMenu = true
		if m.opts.QuitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize keeps the match when the game can adapt to the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.flash.Tick()
	for _, e := range result.Effects {
		m.flash.Play(e)
		if m.opts.Effects != nil {
			m.opts.Effects.Play(e)
		}
	}

	if m.gameState.GameOver {
		m.saveScore()
		m.finishMatch(multiplayer.MatchEndCompleted)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.resultSaved = false
	m.match = multiplayer.NewMatch(m.match.Mode(), m.match.Session())
	m.inputFrame.Clear()
	m.logMatchStart()
}

func (m *GameModel) logMatchStart() {
	m.logger.Info("match started",
		"game", m.game.ID(),
		"match", m.match.ID(),
		"session", m.match.Session(),
		"mode", m.match.Mode(),
	)
}

// saveScore stores the score once per game over.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "error", err)
	}
}

// finishMatch records the match summary once, when the game can report one.
func (m *GameModel) finishMatch(reason multiplayer.MatchEndReason) {
	if m.resultSaved {
		return
	}
	reporter, ok := m.game.(multiplayer.ResultReporter)
	if !ok {
		return
	}
	data, ok := reporter.MatchResult(reason)
	if !ok {
		return
	}
	m.resultSaved = true
	data = m.match.Complete(data)

	m.logger.Info("match ended",
		"match", data.MatchID,
		"winner", data.Winner,
		"reason", data.EndReason,
		"shots", data.PlayerShots,
		"score", data.Score,
	)

	if m.results == nil {
		return
	}
	if err := m.results.SaveMatchResult(data); err != nil {
		m.logger.Error("could not save match", "match", data.MatchID, "error", err)
	}
}

// saveScreenshot saves the current screen as plain text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.flash.Draw(m.screen)

	out := RenderScreen(m.screen)
	// BEL is written as part of the frame.
	if m.flash.TakeBell() {
		out = "\a" + out
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.QuitOnBack = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
