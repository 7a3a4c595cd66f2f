package engine

import "testing"

// computerTurn hands the turn to the computer by making the player miss at p.
func computerTurn(t *testing.T, m *Match, p Point) {
	t.Helper()
	shot, err := m.Shoot(Player, p.X, p.Y)
	if err != nil {
		t.Fatalf("Shoot(Player, %v) failed: %v", p, err)
	}
	if shot.Result != ResultMiss || m.Turn() != Computer {
		t.Fatalf("Shoot(Player, %v) = %v, expected a miss handing over the turn", p, shot.Result)
	}
}

func mustMove(t *testing.T, m *Match, want Point, result ShotResult) {
	t.Helper()
	shot, ok := m.ComputerMove()
	if !ok {
		t.Fatalf("ComputerMove() did not fire, expected shot at %v", want)
	}
	if got := (Point{X: shot.X, Y: shot.Y}); got != want {
		t.Fatalf("ComputerMove() shot at %v, expected %v", got, want)
	}
	if shot.Result != result {
		t.Fatalf("ComputerMove() at %v = %v, expected %v", want, shot.Result, result)
	}
}

func TestTacticScanThenLine(t *testing.T) {
	m := New(Options{Seed: 5, Tactics: true, Fleet: Inventory{0, 0, 0, 1}})
	if err := m.PlaceShip(Player, 3, 3, 4, Right); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceShip(Computer, 0, 9, 4, Right); err != nil {
		t.Fatal(err)
	}

	computerTurn(t, m, Point{9, 0})

	shot, err := m.Shoot(Computer, 3, 3)
	if err != nil || shot.Result != ResultHit {
		t.Fatalf("Shoot(Computer, 3, 3) = (%v, %v), expected hit", shot.Result, err)
	}
	m.updateTactic(Point{3, 3}, shot.Result)
	if tc := m.Tactic(); tc.Kind != TacticScan || tc.Origin != (Point{3, 3}) {
		t.Fatalf("Tactic() = %+v, expected scan from (3, 3)", tc)
	}
	m.tactic.Dir = Up

	// Probe above the hit: miss, rotate clockwise.
	mustMove(t, m, Point{3, 2}, ResultMiss)
	if tc := m.Tactic(); tc.Kind != TacticScan || tc.Dir != Right {
		t.Fatalf("Tactic() after miss = %+v, expected scan right", tc)
	}

	computerTurn(t, m, Point{9, 1})

	// Probe to the right: hit, switch to a line.
	mustMove(t, m, Point{4, 3}, ResultHit)
	want := Tactic{Kind: TacticLine, Origin: Point{3, 3}, Current: Point{5, 3}, Dir: Right}
	if m.Tactic() != want {
		t.Fatalf("Tactic() = %+v, expected %+v", m.Tactic(), want)
	}

	mustMove(t, m, Point{5, 3}, ResultHit)
	if m.Tactic().Current != (Point{6, 3}) {
		t.Fatalf("Tactic().Current = %v, expected (6, 3)", m.Tactic().Current)
	}

	mustMove(t, m, Point{6, 3}, ResultDestroy)
	if m.Tactic().Kind != TacticRandom {
		t.Errorf("Tactic() after destroy = %v, expected random", m.Tactic().Kind)
	}
	if m.Winner() != WinnerComputer {
		t.Errorf("Winner() = %v, expected computer", m.Winner())
	}
}

func TestTacticLineReversesOnMiss(t *testing.T) {
	m := New(Options{Seed: 9, Tactics: true, Fleet: Inventory{0, 0, 1, 0}})
	if err := m.PlaceShip(Player, 4, 3, 3, Right); err != nil { // (4,3) (5,3) (6,3)
		t.Fatal(err)
	}
	if err := m.PlaceShip(Computer, 0, 9, 3, Right); err != nil {
		t.Fatal(err)
	}

	computerTurn(t, m, Point{9, 0})

	shot, err := m.Shoot(Computer, 5, 3)
	if err != nil || shot.Result != ResultHit {
		t.Fatalf("Shoot(Computer, 5, 3) = (%v, %v), expected hit", shot.Result, err)
	}
	m.updateTactic(Point{5, 3}, shot.Result)
	m.tactic.Dir = Right

	mustMove(t, m, Point{6, 3}, ResultHit)
	if tc := m.Tactic(); tc.Kind != TacticLine || tc.Current != (Point{7, 3}) {
		t.Fatalf("Tactic() = %+v, expected line towards (7, 3)", tc)
	}

	mustMove(t, m, Point{7, 3}, ResultMiss)
	want := Tactic{Kind: TacticLine, Origin: Point{5, 3}, Current: Point{4, 3}, Dir: Left}
	if m.Tactic() != want {
		t.Fatalf("Tactic() after miss = %+v, expected %+v", m.Tactic(), want)
	}

	computerTurn(t, m, Point{9, 1})
	mustMove(t, m, Point{4, 3}, ResultDestroy)
}

func TestTacticLineAtEdgeReverses(t *testing.T) {
	m := New(Options{Seed: 2, Tactics: true, Fleet: Inventory{0, 0, 1, 0}})
	if err := m.PlaceShip(Player, 7, 0, 3, Right); err != nil { // (7,0) (8,0) (9,0)
		t.Fatal(err)
	}
	if err := m.PlaceShip(Computer, 0, 9, 3, Right); err != nil {
		t.Fatal(err)
	}
	computerTurn(t, m, Point{9, 9})

	if _, err := m.Shoot(Computer, 8, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Shoot(Computer, 9, 0); err != nil {
		t.Fatal(err)
	}
	// Line heading right has run off the grid.
	m.tactic = Tactic{Kind: TacticLine, Origin: Point{8, 0}, Current: Point{10, 0}, Dir: Right}

	mustMove(t, m, Point{7, 0}, ResultDestroy)
}

func TestScanFallsBackToRandom(t *testing.T) {
	m := New(Options{Seed: 4, Tactics: true, Fleet: Inventory{1, 0, 0, 0}})
	if err := m.PlaceShip(Player, 5, 5, 1, Up); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceShip(Computer, 5, 5, 1, Up); err != nil {
		t.Fatal(err)
	}

	// Both in-bounds neighbours of the corner are already shot.
	m.grids[Player].Fire(1, 0)
	m.grids[Player].Fire(0, 1)
	m.tactic = Tactic{Kind: TacticScan, Origin: Point{0, 0}, Dir: Up}

	p, ok := m.chooseTarget()
	if !ok {
		t.Fatal("chooseTarget() found nothing")
	}
	if m.Tactic().Kind != TacticRandom {
		t.Errorf("Tactic() = %v, expected random after full scan circle", m.Tactic().Kind)
	}
	if !m.isCandidate(p) {
		t.Errorf("chooseTarget() = %v, expected a candidate cell", p)
	}
}

func TestCandidatesExcludeDestroyedNeighbours(t *testing.T) {
	m := New(Options{Fleet: Inventory{1, 1, 0, 0}})
	if err := m.PlaceShip(Player, 4, 4, 2, Right); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceShip(Player, 0, 9, 1, Up); err != nil {
		t.Fatal(err)
	}

	if got := len(m.candidates()); got != GridSize*GridSize {
		t.Errorf("len(candidates()) = %d, expected %d before any shot", got, GridSize*GridSize)
	}

	m.grids[Player].Fire(4, 4)
	if got := len(m.candidates()); got != GridSize*GridSize-1 {
		t.Errorf("len(candidates()) = %d, expected %d next to a live hit", got, GridSize*GridSize-1)
	}

	m.grids[Player].Fire(5, 4)
	// The 4x3 block around the sunk ship is excluded.
	if got := len(m.candidates()); got != GridSize*GridSize-12 {
		t.Errorf("len(candidates()) = %d, expected %d", got, GridSize*GridSize-12)
	}
	for _, p := range []Point{{3, 3}, {6, 5}, {4, 5}} {
		if m.isCandidate(p) {
			t.Errorf("isCandidate(%v) = true next to a destroyed ship", p)
		}
	}
	for _, p := range []Point{{7, 5}, {0, 9}} {
		if !m.isCandidate(p) {
			t.Errorf("isCandidate(%v) = false, expected true", p)
		}
	}
}

func TestPickRandomFallsBackToUnshot(t *testing.T) {
	m := New(Options{Seed: 1, Fleet: Inventory{2, 0, 0, 0}})
	if err := m.PlaceShip(Player, 0, 0, 1, Up); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceShip(Player, 9, 9, 1, Up); err != nil {
		t.Fatal(err)
	}

	g := m.grids[Player]
	for y := range GridSize {
		for x := range GridSize {
			if x == 1 && y == 1 {
				continue
			}
			g.Fire(x, y)
		}
	}

	if got := len(m.candidates()); got != 0 {
		t.Fatalf("len(candidates()) = %d, expected 0", got)
	}
	p, ok := m.pickRandom()
	if !ok || p != (Point{1, 1}) {
		t.Errorf("pickRandom() = (%v, %v), expected ((1, 1), true)", p, ok)
	}
}

func TestComputerMoveWithNothingLeft(t *testing.T) {
	m := New(Options{Seed: 1, Tactics: true, Fleet: Inventory{1, 0, 0, 0}})
	if err := m.PlaceShip(Player, 0, 0, 1, Up); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceShip(Computer, 0, 0, 1, Up); err != nil {
		t.Fatal(err)
	}
	computerTurn(t, m, Point{9, 9})

	g := m.grids[Player]
	for y := range GridSize {
		for x := range GridSize {
			g.Fire(x, y)
		}
	}

	if _, ok := m.pickRandom(); ok {
		t.Error("pickRandom() found a target on a fully shot grid")
	}
	if _, ok := m.ComputerMove(); ok {
		t.Error("ComputerMove() fired on a fully shot grid")
	}
	if m.Stats(Computer).Shots != 0 {
		t.Errorf("Stats(Computer).Shots = %d, expected 0", m.Stats(Computer).Shots)
	}
}

func TestComputerMoveNeedsItsTurn(t *testing.T) {
	m := New(Options{Seed: 1, Fleet: Inventory{1, 0, 0, 0}})
	if _, ok := m.ComputerMove(); ok {
		t.Error("ComputerMove() fired during placement")
	}
	if err := m.AutoPlace(Player); err != nil {
		t.Fatal(err)
	}
	if err := m.AutoPlace(Computer); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.ComputerMove(); ok {
		t.Error("ComputerMove() fired on the player's turn")
	}
}

func TestWithoutTacticsStaysRandom(t *testing.T) {
	m := New(Options{Seed: 8, Tactics: false, Fleet: Inventory{0, 0, 0, 1}})
	if err := m.PlaceShip(Player, 3, 3, 4, Right); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceShip(Computer, 0, 9, 4, Right); err != nil {
		t.Fatal(err)
	}
	computerTurn(t, m, Point{9, 0})

	shot, err := m.Shoot(Computer, 3, 3)
	if err != nil || shot.Result != ResultHit {
		t.Fatalf("Shoot(Computer, 3, 3) = (%v, %v), expected hit", shot.Result, err)
	}
	m.updateTactic(Point{3, 3}, shot.Result)
	if m.Tactic().Kind != TacticRandom {
		t.Errorf("Tactic() = %v, expected random without tactics", m.Tactic().Kind)
	}
}

func TestComputerNeverRepeats(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := New(Options{Seed: seed, Tactics: true, TurnRule: Alternate})
		if err := m.AutoPlace(Player); err != nil {
			t.Fatal(err)
		}
		if err := m.AutoPlace(Computer); err != nil {
			t.Fatal(err)
		}

		// Player fires row by row; computer answers until someone wins.
		next := 0
		for m.Phase() == PhaseBattle {
			switch m.Turn() {
			case Player:
				if next >= GridSize*GridSize {
					t.Fatalf("seed %d: player ran out of cells", seed)
				}
				if _, err := m.Shoot(Player, next%GridSize, next/GridSize); err != nil {
					t.Fatalf("seed %d: Shoot(Player) failed: %v", seed, err)
				}
				next++
			case Computer:
				shot, ok := m.ComputerMove()
				if !ok {
					t.Fatalf("seed %d: ComputerMove() did not fire", seed)
				}
				if shot.Repeated {
					t.Fatalf("seed %d: computer repeated shot at (%d, %d)", seed, shot.X, shot.Y)
				}
			}
		}
		if m.Winner() == WinnerNone {
			t.Errorf("seed %d: finished without a winner", seed)
		}
	}
}

func TestSameSeedSameFleet(t *testing.T) {
	a := New(Options{Seed: 42})
	b := New(Options{Seed: 42})
	if err := a.AutoPlace(Computer); err != nil {
		t.Fatal(err)
	}
	if err := b.AutoPlace(Computer); err != nil {
		t.Fatal(err)
	}
	if *a.grids[Computer] != *b.grids[Computer] {
		t.Error("AutoPlace with the same seed produced different fleets")
	}
}
