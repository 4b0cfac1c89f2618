package blockfall

import (
	"fmt"

	platformcore "github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

const (
	cellW      = 2  // terminal columns per board cell
	panelW     = 12 // side panel width including its border
	panelGap   = 1
	previewH   = 4 // preview box height including border
	titleLines = 1
)

// kindColors maps piece kinds to screen colors.
var kindColors = map[core.Kind]platformcore.Color{
	core.KindI: platformcore.ColorCyan,
	core.KindO: platformcore.ColorYellow,
	core.KindT: platformcore.ColorMagenta,
	core.KindS: platformcore.ColorGreen,
	core.KindZ: platformcore.ColorRed,
	core.KindJ: platformcore.ColorBlue,
	core.KindL: platformcore.ColorOrange,
}

// minSize returns the smallest screen the layout fits in.
func (g *Game) minSize() (int, int) {
	w := g.cfg.Board.Cols*cellW + 2 + panelGap + panelW
	h := g.cfg.Board.Rows + 2 + titleLines
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()
	minW, _ := g.minSize()
	boardX := (g.screenW - minW) / 2
	boardY := titleLines
	board := platformcore.NewRect(boardX, boardY, snap.Cols*cellW+2, snap.Rows+2)

	dst.DrawTextCentered(0, g.Title(), platformcore.ColorBrightWhite)
	dst.DrawBox(board, platformcore.ColorGray)
	g.renderBoard(dst, board.Inset(1), snap)
	g.renderPanel(dst, board.Right()+panelGap, boardY, snap)
	g.renderOverlays(dst, board, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH), platformcore.ColorGray)
}

func (g *Game) drawCell(dst *platformcore.Screen, area platformcore.Rect, col, row int, r rune, c platformcore.Color) {
	x := area.X + col*cellW
	y := area.Y + row
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderBoard draws the stack, the ghost and the active piece.
func (g *Game) renderBoard(dst *platformcore.Screen, area platformcore.Rect, snap core.Snapshot) {
	clearing := make(map[int]bool, len(snap.ClearingRows))
	for _, r := range snap.ClearingRows {
		clearing[r] = true
	}

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			switch cell := snap.Cell(col, row); {
			case clearing[row]:
				g.drawCell(dst, area, col, row, '▓', platformcore.ColorBrightWhite)
			case cell != core.Empty:
				g.drawCell(dst, area, col, row, '█', kindColors[cell.Kind()])
			default:
				g.drawCell(dst, area, col, row, ' ', platformcore.ColorDefault)
				if col%2 == 1 {
					dst.SetColored(area.X+col*cellW, area.Y+row, '·', platformcore.ColorDim)
				}
			}
		}
	}

	if !snap.HasActive {
		return
	}

	ghost := snap.Active
	ghost.Row = snap.GhostRow
	for _, c := range ghost.Cells() {
		g.drawCell(dst, area, c.Col, c.Row, '░', platformcore.ColorDim)
	}
	for _, c := range snap.Active.Cells() {
		g.drawCell(dst, area, c.Col, c.Row, '█', kindColors[snap.Active.Kind])
	}
}

// renderPanel draws the next/hold previews and the HUD.
func (g *Game) renderPanel(dst *platformcore.Screen, x, y int, snap core.Snapshot) {
	next := platformcore.NewRect(x, y, panelW, previewH)
	g.renderPreview(dst, next, "NEXT", snap.Next, true)

	hold := platformcore.NewRect(x, next.Bottom(), panelW, previewH)
	g.renderPreview(dst, hold, "HOLD", snap.Hold, snap.CanHold)

	hudY := hold.Bottom() + 1
	elapsed := int(snap.Elapsed)
	lines := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprint(snap.Score)},
		{"BEST", fmt.Sprint(max(g.best, snap.Score))},
		{"LEVEL", fmt.Sprint(snap.Level)},
		{"LINES", fmt.Sprint(snap.Lines)},
		{"TIME", fmt.Sprintf("%d:%02d", elapsed/60, elapsed%60)},
	}
	for i, l := range lines {
		dst.DrawTextColored(x+1, hudY+i*2, l.label, platformcore.ColorGray)
		dst.DrawTextColored(x+1, hudY+i*2+1, l.value, platformcore.ColorBrightWhite)
	}
}

// renderPreview draws a boxed piece preview. A dimmed preview marks an
// unavailable hold.
func (g *Game) renderPreview(dst *platformcore.Screen, box platformcore.Rect, label string, kind core.Kind, active bool) {
	dst.DrawBox(box, platformcore.ColorGray)
	dst.DrawTextColored(box.X+1, box.Y, label, platformcore.ColorGray)
	if !kind.Valid() {
		return
	}

	color := kindColors[kind]
	if !active {
		color = platformcore.ColorDim
	}
	shape := core.ShapeOf(kind, 0)
	left, right := shape.ColumnExtent()
	top, _ := shape.RowExtent()
	width := (right - left + 1) * cellW
	inner := box.Inset(1)
	originX := inner.X + (inner.W-width)/2
	for _, c := range shape.Cells() {
		x := originX + (c.Col-left)*cellW
		y := inner.Y + c.Row - top
		for i := 0; i < cellW; i++ {
			dst.SetColored(x+i, y, '█', color)
		}
	}
}

// renderOverlays draws the clear banner, pause and game-over messages.
func (g *Game) renderOverlays(dst *platformcore.Screen, board platformcore.Rect, snap core.Snapshot) {
	center := func(y int, text string, c platformcore.Color) {
		x := board.X + (board.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	mid := board.Y + board.H/2

	switch snap.State {
	case core.StateGameOver:
		center(mid-1, " GAME OVER ", platformcore.ColorRed)
		center(mid+1, fmt.Sprintf(" Score %d ", snap.Score), platformcore.ColorBrightWhite)
		center(mid+2, " R restart ", platformcore.ColorGray)
		center(mid+3, " B menu ", platformcore.ColorGray)
		return
	case core.StatePaused:
		center(mid, " PAUSED ", platformcore.ColorBrightYellow)
		center(mid+1, " P resume ", platformcore.ColorGray)
		return
	}

	if g.bannerTicks > 0 && g.banner != "" {
		center(board.Y+2, " "+g.banner+" ", platformcore.ColorBrightYellow)
	}
}
