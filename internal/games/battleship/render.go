package battleship

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
)

// Layout, in screen cells.
const (
	cellW     = 3 // Each grid cell is three characters wide
	labelW    = 3 // Row numbers column
	gridW     = labelW + engine.GridSize*cellW
	gridGap   = 6
	hudLines  = 5
	layoutW   = gridW*2 + gridGap
	layoutH   = 4 + engine.GridSize + 1 + hudLines
	hudOffset = 4 + engine.GridSize + 1

	minScreenW = layoutW
	minScreenH = layoutH
)

type glyph struct {
	text  string
	color core.Color
}

var cellGlyphs = map[engine.CellView]glyph{
	engine.ViewWater:       {" · ", core.ColorBlue},
	engine.ViewShipHidden:  {" · ", core.ColorBlue},
	engine.ViewMiss:        {" o ", core.ColorGray},
	engine.ViewShipVisible: {"███", core.ColorGreen},
	engine.ViewHit:         {" X ", core.ColorBrightRed},
	engine.ViewDestroyed:   {"▓▓▓", core.ColorRed},
}

// Render draws both grids, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall || g.match == nil {
		g.renderTooSmall(dst)
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(layoutW, layoutH)
	x0, y0 := area.X, area.Y

	dst.DrawTextCenteredColor(y0, strings.ToUpper(g.Title()), core.ColorBrightCyan)

	left, right := x0, x0+gridW+gridGap
	g.renderGrid(dst, left, y0+2, engine.Player, "YOUR FLEET")
	g.renderGrid(dst, right, y0+2, engine.Computer, "ENEMY WATERS")

	switch g.match.Phase() {
	case engine.PhasePlacement:
		g.renderPreview(dst, left, y0+2)
		g.renderCursor(dst, left, y0+2)
	case engine.PhaseBattle:
		g.renderCursor(dst, right, y0+2)
	}

	g.renderHUD(dst, x0, y0+hudOffset)

	switch {
	case g.match.Phase() == engine.PhaseFinished:
		g.renderGameOver(dst)
	case g.paused:
		g.renderOverlay(dst, core.ColorBrightYellow, "PAUSED", "", "Press P to resume")
	}
}

// cellOrigin returns the screen position of grid cell (cx, cy) for a grid
// drawn at (x, y).
func cellOrigin(x, y, cx, cy int) (int, int) {
	return x + labelW + cx*cellW, y + 2 + cy
}

func (g *Game) renderGrid(dst *core.Screen, x, y int, side engine.Side, title string) {
	dst.DrawTextColor(x+labelW, y, title, core.ColorBrightWhite)
	if ships := g.match.Ships(side); g.match.Phase() != engine.PhasePlacement {
		dst.DrawTextColor(x+labelW+len(title)+1, y, fmt.Sprintf("(%d afloat)", ships), core.ColorGray)
	}

	for col := range engine.GridSize {
		dst.SetColor(x+labelW+col*cellW+1, y+1, 'A'+rune(col), core.ColorGray)
	}

	hidden := side == engine.Computer && g.match.Phase() != engine.PhaseFinished
	for row := range engine.GridSize {
		dst.DrawTextColor(x, y+2+row, fmt.Sprintf("%2d", row+1), core.ColorGray)
		for col := range engine.GridSize {
			gl := cellGlyphs[g.match.View(side, col, row, hidden)]
			cx, cy := cellOrigin(x, y, col, row)
			dst.DrawTextColor(cx, cy, gl.text, gl.color)
		}
	}
}

func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	if g.length == 0 {
		return
	}
	color := core.ColorBrightGreen
	if !g.match.CanPlace(engine.Player, g.cursor.X, g.cursor.Y, g.length, g.dir) {
		color = core.ColorBrightRed
	}
	for i := range g.length {
		p := g.cursor.Step(g.dir, i)
		if p.X < 0 || p.X >= engine.GridSize || p.Y < 0 || p.Y >= engine.GridSize {
			continue
		}
		cx, cy := cellOrigin(x, y, p.X, p.Y)
		dst.DrawTextColor(cx, cy, "▒▒▒", color)
	}
}

func (g *Game) renderCursor(dst *core.Screen, x, y int) {
	cx, cy := cellOrigin(x, y, g.cursor.X, g.cursor.Y)
	dst.SetColor(cx, cy, '[', core.ColorBrightYellow)
	dst.SetColor(cx+cellW-1, cy, ']', core.ColorBrightYellow)
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	m := g.match
	switch m.Phase() {
	case engine.PhasePlacement:
		if g.length > 0 {
			dst.DrawTextColor(x, y, fmt.Sprintf("Placing %s (%d), facing %s", shipName(g.length), g.length, g.dir), core.ColorBrightWhite)
		} else {
			dst.DrawTextColor(x, y, "Fleet placed", core.ColorBrightWhite)
		}
		dst.DrawTextColor(x, y+1, "Left to place: "+inventoryText(m.Inventory(engine.Player)), core.ColorWhite)
		dst.DrawTextColor(x, y+4, "arrows move  e rotate  c next ship  enter place  x auto  p pause  q quit", core.ColorGray)

	case engine.PhaseBattle, engine.PhaseFinished:
		turn, color := "Your turn: pick a target", core.ColorBrightGreen
		switch {
		case m.Phase() == engine.PhaseFinished:
			turn, color = "Battle over", core.ColorBrightWhite
		case m.Turn() == engine.Computer:
			turn, color = "Enemy is aiming...", core.ColorOrange
		}
		dst.DrawTextColor(x, y, turn, color)

		ps, cs := m.Stats(engine.Player), m.Stats(engine.Computer)
		dst.DrawTextColor(x, y+1, fmt.Sprintf("You: %d shots, %d hits, %d sunk", ps.Shots, ps.Hits, ps.Sunk), core.ColorWhite)
		dst.DrawTextColor(x+gridW+gridGap, y+1, fmt.Sprintf("Enemy: %d shots, %d hits, %d sunk", cs.Shots, cs.Hits, cs.Sunk), core.ColorWhite)
		dst.DrawTextColor(x, y+4, "arrows aim  enter fire  p pause  q quit", core.ColorGray)
	}

	dst.DrawTextColor(x, y+2, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)
	dst.DrawTextColor(x, y+3, g.lastEvent, core.ColorBrightCyan)
}

// inventoryText lists the stock as "1x4 2x3 ..." (count x length), longest first.
func inventoryText(inv engine.Inventory) string {
	var parts []string
	for l := engine.MaxShipLength; l >= 1; l-- {
		if n := inv.Remaining(l); n > 0 {
			parts = append(parts, fmt.Sprintf("%dx%d", n, l))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func (g *Game) renderGameOver(dst *core.Screen) {
	if g.match.Winner() == engine.WinnerPlayer {
		g.renderOverlay(dst, core.ColorBrightGreen, "VICTORY", fmt.Sprintf("Score: %d", g.score), "R restart  Q quit")
		return
	}
	g.renderOverlay(dst, core.ColorBrightRed, "DEFEAT", fmt.Sprintf("Score: %d", g.score), "R restart  Q quit")
}

// renderOverlay draws a boxed message over the center of the screen.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w+6, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCenteredColor(box.Y+1+i, l, color)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height()/2 - 1
	dst.DrawTextCenteredColor(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCenteredColor(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, dst.Width(), dst.Height()), core.ColorGray)
}
