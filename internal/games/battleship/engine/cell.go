package engine

// CellKind tags the variant held by a Cell.
type CellKind uint8

const (
	Water CellKind = iota // Untouched ocean
	Miss                  // Shot landed in water
	Ship                  // One segment of a ship
)

// Cell is one grid square.
//
// The ship fields are only meaningful when Kind is Ship. Back and Front are the
// segment's distance to the two ends of its ship along Dir, which lets the
// whole ship be walked from any segment without a separate ship registry.
type Cell struct {
	Kind      CellKind
	Dir       Direction
	Front     int
	Back      int
	Fired     bool
	Destroyed bool
}

// IsShip reports whether the cell holds a ship segment.
func (c Cell) IsShip() bool {
	return c.Kind == Ship
}

// Shot reports whether a shot has already landed on this cell.
func (c Cell) Shot() bool {
	return c.Kind == Miss || (c.Kind == Ship && c.Fired)
}

// Length returns the length of the ship this segment belongs to, or 0.
func (c Cell) Length() int {
	if c.Kind != Ship {
		return 0
	}
	return c.Front + c.Back + 1
}

// CellView is the render-facing classification of a cell.
type CellView int

const (
	ViewWater CellView = iota
	ViewMiss
	ViewShipVisible
	ViewShipHidden
	ViewHit
	ViewDestroyed
)

func (v CellView) String() string {
	switch v {
	case ViewWater:
		return "water"
	case ViewMiss:
		return "miss"
	case ViewShipVisible:
		return "ship"
	case ViewShipHidden:
		return "hidden"
	case ViewHit:
		return "hit"
	case ViewDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// View classifies the cell for drawing. Hidden ships are un-hit segments the
// viewer is not allowed to see.
func (c Cell) View(hidden bool) CellView {
	switch c.Kind {
	case Miss:
		return ViewMiss
	case Ship:
		switch {
		case c.Destroyed:
			return ViewDestroyed
		case c.Fired:
			return ViewHit
		case hidden:
			return ViewShipHidden
		default:
			return ViewShipVisible
		}
	default:
		return ViewWater
	}
}
