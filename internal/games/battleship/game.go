// Package battleship adapts the match engine to the platform's Game
// contract: it maps input frames to placements and shots, drives the
// computer's clock from the tick rate and renders both grids.
package battleship

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
	"github.com/vovakirdan/tui-battleship/internal/multiplayer"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Variant selects how the turn passes between the sides.
type Variant int

const (
	VariantClassic   Variant = iota // Turn rule from config, retain on hit by default
	VariantAlternate                // Turn always passes after an effective shot
)

// Win scoring: fewer shots score more, with a floor.
const (
	winBase     = 1000
	winPerShot  = 10
	winMinScore = 100
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names
// clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("battleship", func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register("battleship_alternate", func() registry.Game {
		return New(VariantAlternate)
	})
}

// Game is one player-versus-computer Battleship session.
type Game struct {
	variant Variant

	match      *engine.Match
	cfg        config.BattleshipConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	dt         float64 // Seconds per tick

	cursor engine.Point
	length int // Selected ship length, 0 when nothing is left to place
	dir    engine.Direction

	paused    bool
	score     int
	lastEvent string
	effects   []string

	screenTooSmall bool
}

// New creates a Battleship game of the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantAlternate {
		return "battleship_alternate"
	}
	return "battleship"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantAlternate {
		return "Battleship (Alternating Turns)"
	}
	return "Battleship"
}

// Reset starts a new match: the computer's fleet is placed at random and
// the player starts placing from the longest ship.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = 1.0 / float64(core.Max(runtime.TickRate, 1))
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	cfg, err := config.LoadBattleship(configPath)
	if err != nil {
		cfg = config.DefaultBattleshipConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBattleshipPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.paused = false
	g.score = 0
	g.lastEvent = "Place your fleet"

	opts := g.options()
	g.match = engine.New(opts)
	if err := g.match.AutoPlace(engine.Computer); err != nil {
		// The configured fleet does not fit on the grid.
		opts.Fleet = engine.DefaultInventory
		g.match = engine.New(opts)
		//nolint:errcheck // The default fleet always fits
		g.match.AutoPlace(engine.Computer)
		g.lastEvent = "Fleet does not fit, using the standard fleet"
	}
	g.match.SetThinkDelay(g.difficulty.ThinkDelay(cfg.AI.ThinkDelay, 0))
	g.effects = g.effects[:0]

	g.cursor = engine.Point{}
	g.dir = engine.Right
	g.length = g.match.Inventory(engine.Player).Longest()
}

func (g *Game) options() engine.Options {
	rule, err := engine.ParseTurnRule(g.cfg.Rules.TurnRule)
	if err != nil {
		rule = engine.RetainOnHit
	}
	if g.variant == VariantAlternate {
		rule = engine.Alternate
	}

	fleet, ok := fleetFrom(g.cfg.Fleet.Counts)
	if !ok {
		fleet = engine.DefaultInventory
	}

	return engine.Options{
		Seed:       g.runtime.Seed,
		ThinkDelay: g.cfg.AI.ThinkDelay,
		Tactics:    g.cfg.AI.Tactics,
		TurnRule:   rule,
		Fleet:      fleet,
		Effects:    engine.EffectFunc(g.queueEffect),
	}
}

// fleetFrom converts config counts (index = length-1) into an inventory.
func fleetFrom(counts []int) (engine.Inventory, bool) {
	var inv engine.Inventory
	if len(counts) != len(inv) {
		return inv, false
	}
	copy(inv[:], counts)
	return inv, inv.Valid()
}

func (g *Game) queueEffect(e engine.Effect) {
	g.effects = append(g.effects, e.String())
}

// Resize records the new screen size without touching the match.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
}

// Step applies one tick of input and advances the computer's clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && g.match.Phase() != engine.PhaseFinished {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	switch g.match.Phase() {
	case engine.PhasePlacement:
		g.stepPlacement(in)
	case engine.PhaseBattle:
		g.stepBattle(in)
	}

	g.updateScore()
	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.effects) > 0 {
		res.Effects = append([]string(nil), g.effects...)
		g.effects = g.effects[:0]
	}
	return res
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, engine.GridSize-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, engine.GridSize-1)
}

func (g *Game) stepPlacement(in core.InputFrame) {
	g.moveCursor(in)
	inv := g.match.Inventory(engine.Player)

	if in.Has(core.ActionRotate) {
		g.dir = g.dir.Clockwise()
		g.queueEffect(engine.EffectSelect)
	}
	if in.Has(core.ActionCycle) {
		if next := inv.NextAfter(g.length); next != 0 && next != g.length {
			g.length = next
			g.queueEffect(engine.EffectSelect)
		}
	}

	if in.Has(core.ActionAutoPlace) {
		if err := g.match.AutoPlace(engine.Player); err != nil {
			g.lastEvent = "Could not fit the rest of the fleet"
			return
		}
		g.length = 0
		g.enterBattleMessage()
		return
	}

	if in.Has(core.ActionConfirm) && g.length > 0 {
		err := g.match.PlaceShip(engine.Player, g.cursor.X, g.cursor.Y, g.length, g.dir)
		switch {
		case err == nil:
			g.lastEvent = fmt.Sprintf("Placed %s at %s", shipName(g.length), coord(g.cursor.X, g.cursor.Y))
			inv = g.match.Inventory(engine.Player)
			if inv.Remaining(g.length) == 0 {
				g.length = inv.Longest()
			}
			g.enterBattleMessage()
		case errors.Is(err, engine.ErrCollision):
			g.lastEvent = "Ships may not touch or leave the grid"
		default:
			g.lastEvent = err.Error()
		}
	}
}

func (g *Game) enterBattleMessage() {
	if g.match.Phase() == engine.PhaseBattle {
		g.lastEvent = "Battle stations! Fire at the enemy grid"
		g.cursor = engine.Point{X: engine.GridSize / 2, Y: engine.GridSize / 2}
	}
}

func (g *Game) stepBattle(in core.InputFrame) {
	g.moveCursor(in)

	if in.Has(core.ActionConfirm) && g.match.Turn() == engine.Player {
		shot, err := g.match.Shoot(engine.Player, g.cursor.X, g.cursor.Y)
		if err == nil {
			g.describe(shot)
			if shot.Result == engine.ResultDestroy {
				sunk := g.match.Stats(engine.Player).Sunk
				g.match.SetThinkDelay(g.difficulty.ThinkDelay(g.cfg.AI.ThinkDelay, sunk))
			}
		}
	}

	if shot, fired := g.match.Tick(g.dt); fired {
		g.describe(shot)
	}
}

func (g *Game) describe(s engine.Shot) {
	at := coord(s.X, s.Y)
	if s.Repeated {
		g.lastEvent = fmt.Sprintf("Already fired at %s", at)
		return
	}

	who := "You fire"
	if s.Shooter == engine.Computer {
		who = "Enemy fires"
	}
	switch s.Result {
	case engine.ResultMiss:
		g.lastEvent = fmt.Sprintf("%s at %s: miss", who, at)
	case engine.ResultHit:
		g.lastEvent = fmt.Sprintf("%s at %s: hit!", who, at)
	case engine.ResultDestroy:
		g.lastEvent = fmt.Sprintf("%s at %s: ship sunk!", who, at)
	}

	switch g.match.Winner() {
	case engine.WinnerPlayer:
		g.lastEvent = "Enemy fleet destroyed. You win!"
	case engine.WinnerComputer:
		g.lastEvent = "Your fleet is lost."
	}
}

func (g *Game) updateScore() {
	st := g.match.Stats(engine.Player)
	if g.match.Winner() == engine.WinnerPlayer {
		g.score = core.Max(winMinScore, winBase-winPerShot*st.Shots)
		return
	}
	g.score = st.Hits
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.match != nil && g.match.Phase() == engine.PhaseFinished,
		Paused:   g.paused,
	}
}

// MatchResult implements multiplayer.ResultReporter. Nothing is reported
// before the battle starts.
func (g *Game) MatchResult(reason multiplayer.MatchEndReason) (multiplayer.MatchResultData, bool) {
	if g.match == nil || g.match.Phase() == engine.PhasePlacement {
		return multiplayer.MatchResultData{}, false
	}

	ps := g.match.Stats(engine.Player)
	cs := g.match.Stats(engine.Computer)
	return multiplayer.MatchResultData{
		GameID:        g.ID(),
		Winner:        g.match.Winner().String(),
		EndReason:     reason.String(),
		TurnRule:      g.match.TurnRule().String(),
		PlayerShots:   ps.Shots,
		PlayerHits:    ps.Hits,
		ComputerShots: cs.Shots,
		ComputerHits:  cs.Hits,
		PlayerShips:   g.match.Ships(engine.Player),
		ComputerShips: g.match.Ships(engine.Computer),
		Score:         g.score,
	}, true
}

var _ multiplayer.ResultReporter = (*Game)(nil)
var _ registry.Resizer = (*Game)(nil)

// coord formats a grid position as a column letter and 1-based row, e.g. "B7".
func coord(x, y int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(x), y+1)
}

func shipName(length int) string {
	switch length {
	case 1:
		return "patrol boat"
	case 2:
		return "destroyer"
	case 3:
		return "cruiser"
	default:
		return "battleship"
	}
}
