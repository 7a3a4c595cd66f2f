package engine

// GridSize is the width and height of each side's grid.
const GridSize = 10

// MaxShipLength is the longest ship a fleet may contain.
const MaxShipLength = 4

// ShotResult is the outcome of resolving a shot against a grid.
type ShotResult int

const (
	ResultMiss ShotResult = iota
	ResultHit
	ResultDestroy
)

func (r ShotResult) String() string {
	switch r {
	case ResultMiss:
		return "miss"
	case ResultHit:
		return "hit"
	case ResultDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Grid is a GridSize x GridSize board owned by one side.
// Cells are stored row-major (y, then x).
type Grid struct {
	cells [GridSize][GridSize]Cell
}

// NewGrid returns an all-water grid.
func NewGrid() *Grid {
	return &Grid{}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[y][x], nil
}

// at returns a pointer to an in-bounds cell. Callers check bounds first.
func (g *Grid) at(p Point) *Cell {
	return &g.cells[p.Y][p.X]
}

// View returns the render classification of (x, y). Out-of-range coordinates
// read as water.
func (g *Grid) View(x, y int, hidden bool) CellView {
	c, err := g.Get(x, y)
	if err != nil {
		return ViewWater
	}
	return c.View(hidden)
}

// HasCollision reports whether a ship of the given length cannot start at
// (x, y) facing dir. A run is illegal if any of its cells leaves the grid or
// has a ship segment within Chebyshev distance 1. With destroyedOnly set,
// only segments of destroyed ships count as neighbours.
func (g *Grid) HasCollision(x, y, length int, dir Direction, destroyedOnly bool) bool {
	start := Point{X: x, Y: y}
	for i := range length {
		p := start.Step(dir, i)
		if !g.InBounds(p.X, p.Y) {
			return true
		}
		for ny := p.Y - 1; ny <= p.Y+1; ny++ {
			for nx := p.X - 1; nx <= p.X+1; nx++ {
				if !g.InBounds(nx, ny) {
					continue
				}
				c := g.cells[ny][nx]
				if !c.IsShip() {
					continue
				}
				if !destroyedOnly || c.Destroyed {
					return true
				}
			}
		}
	}
	return false
}

// Place writes a ship of the given length starting at (x, y) along dir.
// It does not check legality; callers must gate on HasCollision.
func (g *Grid) Place(x, y, length int, dir Direction) {
	start := Point{X: x, Y: y}
	for i := range length {
		p := start.Step(dir, i)
		*g.at(p) = Cell{
			Kind:  Ship,
			Dir:   dir,
			Back:  i,
			Front: length - i - 1,
		}
	}
}

// segments returns every cell position of the ship that owns the segment at p.
func (g *Grid) segments(p Point) []Point {
	c := *g.at(p)
	if !c.IsShip() {
		return nil
	}
	pts := make([]Point, 0, c.Length())
	for off := -c.Back; off <= c.Front; off++ {
		pts = append(pts, p.Step(c.Dir, off))
	}
	return pts
}

// Fire resolves a shot at (x, y). The boolean reports whether the grid
// changed; repeat shots at a Miss or an already fired segment return
// (ResultMiss, false) and leave the grid untouched.
func (g *Grid) Fire(x, y int) (ShotResult, bool) {
	if !g.InBounds(x, y) {
		return ResultMiss, false
	}
	p := Point{X: x, Y: y}
	c := g.at(p)

	switch {
	case c.Kind == Water:
		c.Kind = Miss
		return ResultMiss, true
	case c.Kind == Miss, c.Fired:
		return ResultMiss, false
	}

	c.Fired = true

	segs := g.segments(p)
	for _, s := range segs {
		if !g.at(s).Fired {
			return ResultHit, true
		}
	}
	for _, s := range segs {
		g.at(s).Destroyed = true
	}
	return ResultDestroy, true
}

// Clear resets every cell to water.
func (g *Grid) Clear() {
	g.cells = [GridSize][GridSize]Cell{}
}

// ShipCells counts ship segments on the grid.
func (g *Grid) ShipCells() int {
	n := 0
	for y := range GridSize {
		for x := range GridSize {
			if g.cells[y][x].IsShip() {
				n++
			}
		}
	}
	return n
}
