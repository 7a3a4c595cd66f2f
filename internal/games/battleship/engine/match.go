package engine

import (
	"fmt"
	"math/rand"
)

// DefaultThinkDelay is the computer's pause between shots, in seconds.
const DefaultThinkDelay = 1.0

// maxAutoPlaceAttempts bounds how many times AutoPlace restarts after a dead end.
const maxAutoPlaceAttempts = 200

// Side identifies one of the two participants.
type Side int

const (
	Player Side = iota
	Computer
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Player {
		return Computer
	}
	return Player
}

func (s Side) String() string {
	if s == Player {
		return "player"
	}
	return "computer"
}

// Winner records who won the match, if anyone.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerComputer
)

func winnerFor(s Side) Winner {
	if s == Player {
		return WinnerPlayer
	}
	return WinnerComputer
}

func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerComputer:
		return "computer"
	default:
		return "none"
	}
}

// Phase is the match lifecycle stage.
type Phase int

const (
	PhasePlacement Phase = iota
	PhaseBattle
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlacement:
		return "placement"
	case PhaseBattle:
		return "battle"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TurnRule decides whether a hit keeps the shooter's turn.
type TurnRule int

const (
	// RetainOnHit passes the turn only on a miss.
	RetainOnHit TurnRule = iota
	// Alternate passes the turn after every effective shot.
	Alternate
)

func (r TurnRule) String() string {
	if r == Alternate {
		return "alternate"
	}
	return "retain_on_hit"
}

// ParseTurnRule converts a config string into a TurnRule.
// An empty string selects RetainOnHit.
func ParseTurnRule(s string) (TurnRule, error) {
	switch s {
	case "", "retain_on_hit":
		return RetainOnHit, nil
	case "alternate":
		return Alternate, nil
	default:
		return RetainOnHit, fmt.Errorf("engine: unknown turn rule %q", s)
	}
}

// Stats counts one side's shooting.
type Stats struct {
	Shots int // Effective shots (repeats are not counted)
	Hits  int // Shots that hit or destroyed a ship
	Sunk  int // Opponent ships destroyed
}

// Shot describes one resolved shot.
type Shot struct {
	Shooter  Side
	X, Y     int
	Result   ShotResult
	Repeated bool // Target was already shot; nothing changed
}

// Options configures a Match.
type Options struct {
	Seed       int64
	ThinkDelay float64 // Seconds between computer shots
	Tactics    bool    // When false the computer always fires at random
	TurnRule   TurnRule
	Fleet      Inventory // Zero value selects DefaultInventory
	Effects    EffectSink
}

// Match is the complete state of one game between the player and the computer.
// It is not safe for concurrent use; the front end drives it from a single loop.
type Match struct {
	opts    Options
	rng     *rand.Rand
	effects EffectSink

	grids     [2]*Grid // Indexed by owning side
	inventory [2]Inventory
	ships     [2]int // Live ships per side
	stats     [2]Stats

	phase  Phase
	turn   Side
	winner Winner

	tactic Tactic
	delay  float64
	timer  float64
}

// New creates a match in the placement phase.
func New(opts Options) *Match {
	if opts.Fleet == (Inventory{}) {
		opts.Fleet = DefaultInventory
	}
	if opts.ThinkDelay <= 0 {
		opts.ThinkDelay = DefaultThinkDelay
	}
	effects := opts.Effects
	if effects == nil {
		effects = nopSink{}
	}

	m := &Match{
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		effects: effects,
	}
	m.Reset()
	return m
}

// Reset discards all state and returns the match to the placement phase.
// The random source is not reseeded.
func (m *Match) Reset() {
	m.grids = [2]*Grid{NewGrid(), NewGrid()}
	m.inventory = [2]Inventory{m.opts.Fleet, m.opts.Fleet}
	m.ships = [2]int{}
	m.stats = [2]Stats{}
	m.phase = PhasePlacement
	m.turn = Player
	m.winner = WinnerNone
	m.tactic = Tactic{}
	m.delay = m.opts.ThinkDelay
	m.timer = m.delay
}

// Phase returns the current lifecycle stage.
func (m *Match) Phase() Phase { return m.phase }

// Turn returns the side expected to shoot next.
func (m *Match) Turn() Side { return m.turn }

// Winner returns the winner, or WinnerNone while the match is running.
func (m *Match) Winner() Winner { return m.winner }

// Inventory returns the ships the side still has to place.
func (m *Match) Inventory(side Side) Inventory { return m.inventory[side] }

// Ships returns the number of the side's ships that are still afloat.
func (m *Match) Ships(side Side) int { return m.ships[side] }

// Stats returns the side's shooting statistics.
func (m *Match) Stats(side Side) Stats { return m.stats[side] }

// Tactic returns the computer's current targeting tactic.
func (m *Match) Tactic() Tactic { return m.tactic }

// TurnRule returns the rule in force for this match.
func (m *Match) TurnRule() TurnRule { return m.opts.TurnRule }

// ThinkDelay returns the current delay between computer shots.
func (m *Match) ThinkDelay() float64 { return m.delay }

// SetThinkDelay changes the delay applied after the computer's next shot.
func (m *Match) SetThinkDelay(seconds float64) {
	if seconds <= 0 {
		seconds = DefaultThinkDelay
	}
	m.delay = seconds
}

// Cell returns the cell at (x, y) on the side's own grid.
func (m *Match) Cell(side Side, x, y int) (Cell, error) {
	return m.grids[side].Get(x, y)
}

// View classifies the cell at (x, y) on the side's grid. Un-hit ships are
// hidden when hidden is set.
func (m *Match) View(side Side, x, y int, hidden bool) CellView {
	return m.grids[side].View(x, y, hidden)
}

// CanPlace reports whether PlaceShip would accept the placement.
func (m *Match) CanPlace(side Side, x, y, length int, dir Direction) bool {
	if m.phase != PhasePlacement || m.inventory[side].Remaining(length) == 0 {
		return false
	}
	return !m.grids[side].HasCollision(x, y, length, dir, false)
}

// PlaceShip places one ship from the side's inventory.
func (m *Match) PlaceShip(side Side, x, y, length int, dir Direction) error {
	if m.phase != PhasePlacement {
		return ErrWrongPhase
	}
	if length < 1 || length > MaxShipLength {
		return ErrInvalidLength
	}
	if m.inventory[side].Remaining(length) == 0 {
		return ErrNoShipsLeft
	}
	g := m.grids[side]
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if g.HasCollision(x, y, length, dir, false) {
		return ErrCollision
	}

	m.place(side, x, y, length, dir)
	m.effects.Play(EffectPlace)
	m.maybeStartBattle()
	return nil
}

func (m *Match) place(side Side, x, y, length int, dir Direction) {
	m.grids[side].Place(x, y, length, dir)
	m.inventory[side].take(length)
	m.ships[side]++
}

type placement struct {
	x, y int
	dir  Direction
}

// AutoPlace fills the side's remaining inventory with random legal
// placements, longest ships first. Ships already on the grid are kept.
func (m *Match) AutoPlace(side Side) error {
	if m.phase != PhasePlacement {
		return ErrWrongPhase
	}
	if m.inventory[side].Empty() {
		return nil
	}

	savedGrid := *m.grids[side]
	savedInv := m.inventory[side]
	savedShips := m.ships[side]

	for range maxAutoPlaceAttempts {
		if m.fillRandom(side) {
			m.effects.Play(EffectPlace)
			m.maybeStartBattle()
			return nil
		}
		*m.grids[side] = savedGrid
		m.inventory[side] = savedInv
		m.ships[side] = savedShips
	}
	return fmt.Errorf("engine: auto place %s fleet: %w", side, ErrPlacementFailed)
}

// fillRandom places the remaining ships one at a time. It returns false on a
// dead end, leaving the grid partially filled.
func (m *Match) fillRandom(side Side) bool {
	g := m.grids[side]
	var options []placement

	for !m.inventory[side].Empty() {
		length := m.inventory[side].Longest()

		options = options[:0]
		for y := range GridSize {
			for x := range GridSize {
				for _, dir := range Directions {
					if !g.HasCollision(x, y, length, dir, false) {
						options = append(options, placement{x: x, y: y, dir: dir})
					}
				}
			}
		}
		if len(options) == 0 {
			return false
		}

		p := options[m.rng.Intn(len(options))]
		m.place(side, p.x, p.y, length, p.dir)
	}
	return true
}

func (m *Match) maybeStartBattle() {
	if m.inventory[Player].Empty() && m.inventory[Computer].Empty() {
		m.phase = PhaseBattle
		m.turn = Player
		m.timer = m.delay
	}
}

// Shoot fires a shot from shooter at (x, y) on the opponent's grid.
//
// A miss passes the turn. A hit or destroy keeps it under RetainOnHit and
// passes it under Alternate. Shooting a cell that was already shot returns a
// Shot with Repeated set and changes nothing, including the turn.
func (m *Match) Shoot(shooter Side, x, y int) (Shot, error) {
	switch m.phase {
	case PhasePlacement:
		return Shot{}, ErrWrongPhase
	case PhaseFinished:
		return Shot{}, ErrMatchFinished
	}
	if shooter != m.turn {
		return Shot{}, ErrNotYourTurn
	}

	opponent := shooter.Opponent()
	target := m.grids[opponent]
	if !target.InBounds(x, y) {
		return Shot{}, ErrOutOfBounds
	}

	shot := Shot{Shooter: shooter, X: x, Y: y}
	res, changed := target.Fire(x, y)
	shot.Result = res
	if !changed {
		shot.Repeated = true
		return shot, nil
	}

	st := &m.stats[shooter]
	st.Shots++

	switch res {
	case ResultMiss:
		m.effects.Play(EffectMiss)
		m.turn = opponent
	case ResultHit:
		st.Hits++
		m.effects.Play(EffectHit)
		if m.opts.TurnRule == Alternate {
			m.turn = opponent
		}
	case ResultDestroy:
		st.Hits++
		st.Sunk++
		m.ships[opponent]--
		m.effects.Play(EffectDestroy)
		if m.ships[opponent] == 0 {
			m.winner = winnerFor(shooter)
			m.phase = PhaseFinished
		} else if m.opts.TurnRule == Alternate {
			m.turn = opponent
		}
	}

	return shot, nil
}

// Tick advances the computer's think timer by dt seconds. When the computer
// holds the turn and the timer runs out it fires one shot and the timer is
// reset. While it is not the computer's turn the timer stays primed at the
// full delay, so every computer turn starts with a pause.
func (m *Match) Tick(dt float64) (Shot, bool) {
	if m.phase != PhaseBattle || m.turn != Computer {
		m.timer = m.delay
		return Shot{}, false
	}

	m.timer -= dt
	if m.timer > 0 {
		return Shot{}, false
	}
	m.timer = m.delay
	return m.ComputerMove()
}
