package engine

// TacticKind tags the variant held by a Tactic.
type TacticKind int

const (
	// TacticRandom has no target information.
	TacticRandom TacticKind = iota
	// TacticScan has a hit at Origin and probes around it to find the ship's axis.
	TacticScan
	// TacticLine walks along Dir from Origin; Current is the next cell to try.
	TacticLine
)

func (k TacticKind) String() string {
	switch k {
	case TacticScan:
		return "scan"
	case TacticLine:
		return "line"
	default:
		return "random"
	}
}

// Tactic is the computer's targeting state.
type Tactic struct {
	Kind    TacticKind
	Origin  Point
	Current Point
	Dir     Direction
}

// candidates returns every cell of the player's grid the computer may target:
// not yet shot and not next to a destroyed ship.
func (m *Match) candidates() []Point {
	pts := make([]Point, 0, GridSize*GridSize)
	for y := range GridSize {
		for x := range GridSize {
			if p := (Point{X: x, Y: y}); m.isCandidate(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

func (m *Match) isCandidate(p Point) bool {
	g := m.grids[Player]
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	if g.at(p).Shot() {
		return false
	}
	return !g.HasCollision(p.X, p.Y, 1, Up, true)
}

// unshot returns every cell of the player's grid that has not been shot.
func (m *Match) unshot() []Point {
	g := m.grids[Player]
	var pts []Point
	for y := range GridSize {
		for x := range GridSize {
			if !g.cells[y][x].Shot() {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// pickRandom selects a uniformly random candidate. When the candidate set is
// empty it falls back to any unshot cell. ok is false when nothing is left.
func (m *Match) pickRandom() (Point, bool) {
	pts := m.candidates()
	if len(pts) == 0 {
		pts = m.unshot()
	}
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[m.rng.Intn(len(pts))], true
}

// scanFrom returns the first clockwise rotation of dir, starting with dir
// itself, whose neighbour of p is a candidate. At most one full circle is tried.
func (m *Match) scanFrom(p Point, dir Direction) (Direction, bool) {
	for range len(Directions) {
		if m.isCandidate(p.Next(dir)) {
			return dir, true
		}
		dir = dir.Clockwise()
	}
	return dir, false
}

// chooseTarget picks the next target for the current tactic. The tactic may
// be rewritten when its preferred cell is no longer available.
func (m *Match) chooseTarget() (Point, bool) {
	switch m.tactic.Kind {
	case TacticLine:
		if m.isCandidate(m.tactic.Current) {
			return m.tactic.Current, true
		}
		rev := m.tactic.Dir.Opposite()
		if next := m.tactic.Origin.Next(rev); m.isCandidate(next) {
			m.tactic.Dir = rev
			m.tactic.Current = next
			return next, true
		}
		m.tactic = Tactic{Kind: TacticScan, Origin: m.tactic.Origin, Dir: m.tactic.Dir}
		return m.chooseTarget()

	case TacticScan:
		if dir, ok := m.scanFrom(m.tactic.Origin, m.tactic.Dir); ok {
			m.tactic.Dir = dir
			return m.tactic.Origin.Next(dir), true
		}
		m.tactic = Tactic{}
		return m.pickRandom()

	default:
		return m.pickRandom()
	}
}

// updateTactic moves the state machine on after a shot at p.
func (m *Match) updateTactic(p Point, res ShotResult) {
	t := &m.tactic

	if res == ResultDestroy {
		*t = Tactic{}
		return
	}

	if !m.opts.Tactics {
		return
	}

	switch res {
	case ResultMiss:
		switch t.Kind {
		case TacticScan:
			t.Dir = t.Dir.Clockwise()
		case TacticLine:
			t.Dir = t.Dir.Opposite()
			t.Current = t.Origin.Next(t.Dir)
		}

	case ResultHit:
		switch t.Kind {
		case TacticRandom:
			*t = Tactic{
				Kind:   TacticScan,
				Origin: p,
				Dir:    Directions[m.rng.Intn(len(Directions))],
			}
		case TacticScan:
			dir, ok := m.scanFrom(p, t.Dir)
			if !ok {
				*t = Tactic{}
				return
			}
			*t = Tactic{
				Kind:    TacticLine,
				Origin:  t.Origin,
				Current: p.Next(dir),
				Dir:     dir,
			}
		case TacticLine:
			if next := p.Next(t.Dir); m.isCandidate(next) {
				t.Current = next
			} else {
				t.Dir = t.Dir.Opposite()
				t.Current = t.Origin.Next(t.Dir)
			}
		}
	}
}

// ComputerMove chooses a target for the computer, fires at it and updates
// the tactic from the outcome. It returns false when it is not the
// computer's turn in battle or no unshot cell remains.
func (m *Match) ComputerMove() (Shot, bool) {
	if m.phase != PhaseBattle || m.turn != Computer {
		return Shot{}, false
	}

	var (
		target Point
		ok     bool
	)
	if m.opts.Tactics {
		target, ok = m.chooseTarget()
	} else {
		target, ok = m.pickRandom()
	}
	if !ok {
		return Shot{}, false
	}

	shot, err := m.Shoot(Computer, target.X, target.Y)
	if err != nil {
		return Shot{}, false
	}
	m.updateTactic(target, shot.Result)
	return shot, true
}
