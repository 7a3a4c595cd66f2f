package battleship

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
	"github.com/vovakirdan/tui-battleship/internal/multiplayer"
)

const testConfig = `
ai:
  think_delay: 0.5
  tactics: true
difficulty:
  enabled: false
`

// newGame resets a game with a fixed config: 10 ticks per second and a
// half second think delay, so the computer fires after about five ticks.
func newGame(t *testing.T, v Variant) *Game {
	t.Helper()

	path := filepath.Join(t.TempDir(), "battleship.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// sinkEnemyFleet fires at every enemy ship segment on the player's behalf.
func sinkEnemyFleet(t *testing.T, g *Game) {
	t.Helper()
	for y := range engine.GridSize {
		for x := range engine.GridSize {
			c, _ := g.match.Cell(engine.Computer, x, y)
			if !c.IsShip() || g.match.Phase() != engine.PhaseBattle {
				continue
			}
			if _, err := g.match.Shoot(engine.Player, x, y); err != nil {
				t.Fatalf("Shoot(%d, %d) error = %v", x, y, err)
			}
		}
	}
}

func TestResetStartsPlacement(t *testing.T) {
	g := newGame(t, VariantClassic)
	snap := g.Snapshot()

	if snap.Phase != "placement" {
		t.Errorf("Phase = %s, expected placement", snap.Phase)
	}
	if snap.Length != 4 || snap.Dir != "right" {
		t.Errorf("selection = %d %s, expected 4 right", snap.Length, snap.Dir)
	}
	if snap.ComputerShips != 10 {
		t.Errorf("ComputerShips = %d, expected the computer fleet placed", snap.ComputerShips)
	}
	if snap.PlayerShips != 0 {
		t.Errorf("PlayerShips = %d, expected 0", snap.PlayerShips)
	}
	if g.State().GameOver {
		t.Error("new game should not be over")
	}
}

func TestIDsAndTitles(t *testing.T) {
	tests := []struct {
		variant Variant
		id      string
		rule    engine.TurnRule
	}{
		{VariantClassic, "battleship", engine.RetainOnHit},
		{VariantAlternate, "battleship_alternate", engine.Alternate},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g := newGame(t, tt.variant)
			if g.ID() != tt.id {
				t.Errorf("ID() = %q, expected %q", g.ID(), tt.id)
			}
			if g.match.TurnRule() != tt.rule {
				t.Errorf("TurnRule() = %v, expected %v", g.match.TurnRule(), tt.rule)
			}
		})
	}
}

func TestCursorClamps(t *testing.T) {
	g := newGame(t, VariantClassic)

	press(g, core.ActionLeft)
	press(g, core.ActionUp)
	if g.cursor != (engine.Point{}) {
		t.Errorf("cursor = %+v, expected to stay at origin", g.cursor)
	}

	for range 20 {
		press(g, core.ActionRight)
		press(g, core.ActionDown)
	}
	if g.cursor.X != engine.GridSize-1 || g.cursor.Y != engine.GridSize-1 {
		t.Errorf("cursor = %+v, expected bottom right corner", g.cursor)
	}
}

func TestPlaceShipFromInput(t *testing.T) {
	g := newGame(t, VariantClassic)

	res := press(g, core.ActionConfirm)
	if !slices.Contains(res.Effects, "place") {
		t.Errorf("Effects = %v, expected place", res.Effects)
	}
	snap := g.Snapshot()
	if snap.PlayerShips != 1 {
		t.Fatalf("PlayerShips = %d, expected 1", snap.PlayerShips)
	}
	if snap.Length != 3 {
		t.Errorf("Length = %d, expected next longest ship 3", snap.Length)
	}
	for x := range 4 {
		if v := engine.CellView(snap.PlayerGrid[x]); v != engine.ViewShipVisible {
			t.Errorf("cell (%d, 0) = %v, expected ship", x, v)
		}
	}

	// Same spot again touches the first ship.
	press(g, core.ActionConfirm)
	if g.Snapshot().PlayerShips != 1 {
		t.Error("touching placement should be refused")
	}
	if !strings.Contains(g.lastEvent, "may not touch") {
		t.Errorf("lastEvent = %q, expected collision message", g.lastEvent)
	}
}

func TestRotateAndCycle(t *testing.T) {
	g := newGame(t, VariantClassic)

	res := press(g, core.ActionRotate)
	if g.dir != engine.Down {
		t.Errorf("dir = %v, expected down after one rotation", g.dir)
	}
	if !slices.Contains(res.Effects, "select") {
		t.Errorf("Effects = %v, expected select", res.Effects)
	}

	press(g, core.ActionCycle)
	if g.length != 1 {
		t.Errorf("length = %d, expected cycle from 4 to wrap to 1", g.length)
	}
	press(g, core.ActionCycle)
	if g.length != 2 {
		t.Errorf("length = %d, expected 2", g.length)
	}
}

func TestAutoPlaceStartsBattle(t *testing.T) {
	g := newGame(t, VariantClassic)

	press(g, core.ActionAutoPlace)
	snap := g.Snapshot()
	if snap.Phase != "battle" {
		t.Fatalf("Phase = %s, expected battle", snap.Phase)
	}
	if snap.Turn != "player" {
		t.Errorf("Turn = %s, expected the player to start", snap.Turn)
	}
	if snap.CursorX != engine.GridSize/2 || snap.CursorY != engine.GridSize/2 {
		t.Errorf("cursor = (%d, %d), expected centre", snap.CursorX, snap.CursorY)
	}
}

func TestComputerFiresAfterDelay(t *testing.T) {
	g := newGame(t, VariantAlternate)
	press(g, core.ActionAutoPlace)

	press(g, core.ActionConfirm)
	if g.Snapshot().PlayerShots != 1 {
		t.Fatalf("PlayerShots = %d, expected 1", g.Snapshot().PlayerShots)
	}
	if g.match.Turn() != engine.Computer {
		t.Fatalf("Turn() = %v, expected the computer after any shot", g.match.Turn())
	}

	empty := core.NewInputFrame()
	for range 3 {
		g.Step(empty)
	}
	if g.Snapshot().ComputerShots != 0 {
		t.Fatal("computer fired before its think delay ran out")
	}

	for range 10 {
		g.Step(empty)
		if g.Snapshot().ComputerShots > 0 {
			break
		}
	}
	if g.Snapshot().ComputerShots != 1 {
		t.Fatalf("ComputerShots = %d, expected 1", g.Snapshot().ComputerShots)
	}
	if g.match.Turn() != engine.Player {
		t.Errorf("Turn() = %v, expected the player again", g.match.Turn())
	}
}

func TestPlayerCannotFireOutOfTurn(t *testing.T) {
	g := newGame(t, VariantAlternate)
	press(g, core.ActionAutoPlace)
	press(g, core.ActionConfirm)

	press(g, core.ActionRight, core.ActionConfirm)
	if g.Snapshot().PlayerShots != 1 {
		t.Errorf("PlayerShots = %d, expected shots on the computer's turn to be ignored", g.Snapshot().PlayerShots)
	}
}

func TestPauseFreezesMatch(t *testing.T) {
	g := newGame(t, VariantClassic)

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	press(g, core.ActionConfirm)
	if g.Snapshot().PlayerShips != 0 {
		t.Error("paused game should ignore input")
	}

	press(g, core.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestWinScore(t *testing.T) {
	g := newGame(t, VariantClassic)
	press(g, core.ActionAutoPlace)

	sinkEnemyFleet(t, g)
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("expected game over after sinking the fleet")
	}
	// 20 ship segments, no misses.
	if res.State.Score != winBase-winPerShot*20 {
		t.Errorf("Score = %d, expected %d", res.State.Score, winBase-winPerShot*20)
	}
	if g.Snapshot().Winner != "player" {
		t.Errorf("Winner = %s, expected player", g.Snapshot().Winner)
	}
}

func TestScoreCountsHitsBeforeWin(t *testing.T) {
	g := newGame(t, VariantClassic)
	press(g, core.ActionAutoPlace)

	for y := range engine.GridSize {
		for x := range engine.GridSize {
			if c, _ := g.match.Cell(engine.Computer, x, y); c.IsShip() {
				g.match.Shoot(engine.Player, x, y) //nolint:errcheck
				g.Step(core.NewInputFrame())
				if g.State().Score != 1 {
					t.Errorf("Score = %d, expected 1 after one hit", g.State().Score)
				}
				return
			}
		}
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(t, VariantClassic)
	press(g, core.ActionAutoPlace)
	sinkEnemyFleet(t, g)
	g.Step(core.NewInputFrame())

	g.Reset(g.runtime)
	snap := g.Snapshot()
	if snap.Phase != "placement" || snap.Score != 0 || snap.PlayerShips != 0 {
		t.Errorf("after reset: phase %s score %d ships %d, expected a fresh match",
			snap.Phase, snap.Score, snap.PlayerShips)
	}
}

func TestMatchResult(t *testing.T) {
	g := newGame(t, VariantClassic)

	if _, ok := g.MatchResult(multiplayer.MatchEndCompleted); ok {
		t.Error("no result expected during placement")
	}

	press(g, core.ActionAutoPlace)
	sinkEnemyFleet(t, g)
	g.Step(core.NewInputFrame())

	r, ok := g.MatchResult(multiplayer.MatchEndCompleted)
	if !ok {
		t.Fatal("expected a result after the battle")
	}
	if r.GameID != "battleship" || r.Winner != "player" || r.EndReason != "completed" {
		t.Errorf("result = %+v", r)
	}
	if r.PlayerShots != 20 || r.PlayerHits != 20 || r.ComputerShips != 0 {
		t.Errorf("shots/hits/ships = %d/%d/%d, expected 20/20/0", r.PlayerShots, r.PlayerHits, r.ComputerShips)
	}
	if r.Score != g.State().Score {
		t.Errorf("Score = %d, expected %d", r.Score, g.State().Score)
	}
}

func TestResizeKeepsMatch(t *testing.T) {
	g := newGame(t, VariantClassic)
	press(g, core.ActionConfirm)

	g.Resize(40, 10)
	if !g.screenTooSmall {
		t.Error("40x10 should be too small")
	}
	press(g, core.ActionRight)
	if g.cursor.X != 0 {
		t.Error("input should be ignored while the screen is too small")
	}

	g.Resize(100, 30)
	if g.screenTooSmall || g.Snapshot().PlayerShips != 1 {
		t.Error("resize should keep the placed ship")
	}
}

func TestRenderHidesEnemyShips(t *testing.T) {
	g := newGame(t, VariantClassic)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"YOUR FLEET", "ENEMY WATERS", "Placing battleship"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if n := strings.Count(out, "█"); n != 0 {
		t.Errorf("found %d ship glyphs, expected the enemy fleet hidden", n)
	}

	press(g, core.ActionAutoPlace)
	scr.Clear()
	g.Render(scr)
	// Only the player's 20 segments, three glyphs each.
	if n := strings.Count(scr.String(), "█"); n != 60 {
		t.Errorf("found %d ship glyphs, expected 60", n)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, VariantClassic)
	g.Resize(30, 10)

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Errorf("render = %q, expected size warning", scr.String())
	}
}
