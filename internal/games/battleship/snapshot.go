package battleship

import "github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"

// Snapshot captures the visible game state using primitive types only.
type Snapshot struct {
	Phase  string
	Turn   string
	Winner string

	CursorX, CursorY int
	Length           int
	Dir              string
	Paused           bool
	Score            int
	LastEvent        string

	PlayerShips, ComputerShips int
	PlayerShots, ComputerShots int
	PlayerHits, ComputerHits   int

	// Unhidden cell views, flattened row by row (y*GridSize + x).
	PlayerGrid   []int
	ComputerGrid []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	m := g.match
	ps, cs := m.Stats(engine.Player), m.Stats(engine.Computer)

	return Snapshot{
		Phase:         m.Phase().String(),
		Turn:          m.Turn().String(),
		Winner:        m.Winner().String(),
		CursorX:       g.cursor.X,
		CursorY:       g.cursor.Y,
		Length:        g.length,
		Dir:           g.dir.String(),
		Paused:        g.paused,
		Score:         g.score,
		LastEvent:     g.lastEvent,
		PlayerShips:   m.Ships(engine.Player),
		ComputerShips: m.Ships(engine.Computer),
		PlayerShots:   ps.Shots,
		ComputerShots: cs.Shots,
		PlayerHits:    ps.Hits,
		ComputerHits:  cs.Hits,
		PlayerGrid:    flattenGrid(m, engine.Player),
		ComputerGrid:  flattenGrid(m, engine.Computer),
	}
}

func flattenGrid(m *engine.Match, side engine.Side) []int {
	cells := make([]int, 0, engine.GridSize*engine.GridSize)
	for y := range engine.GridSize {
		for x := range engine.GridSize {
			cells = append(cells, int(m.View(side, x, y, false)))
		}
	}
	return cells
}
