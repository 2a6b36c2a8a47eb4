package game

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Pong/internal/match"
)

const (
	borderWidth = 4
	netWidth    = 4
	netDash     = 20
	netGap      = 15

	scoreScale  = 5
	bannerScale = 3
	hintScale   = 1
)

// Draw renders the table, the pieces and, once the match is over, the
// result screen.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.state
	t := g.theme
	w, h := float32(s.Rules.Width), float32(s.Rules.Height)

	screen.Fill(t.Background)
	g.drawTable(screen, w, h)

	for _, p := range [...]match.Paddle{s.Left, s.Right} {
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), t.Paddle, true)
	}
	b := s.Ball
	vector.FillCircle(screen, float32(b.CenterX()), float32(b.CenterY()), float32(b.W/2), t.Ball, true)

	drawCentered(screen, strconv.Itoa(s.Score.Left), float64(w)/4, 30, scoreScale, t.Text)
	drawCentered(screen, strconv.Itoa(s.Score.Right), 3*float64(w)/4, 30, scoreScale, t.Text)
	drawCentered(screen, g.controlsHint(), float64(w)/2, float64(h)-30, hintScale, t.Hint)

	if g.showFeed {
		g.feed.Draw(screen, borderWidth+6, borderWidth+6)
	}
	if s.Phase == match.PhaseGameOver {
		g.drawResult(screen, w, h)
	}
	if g.status != "" {
		drawCentered(screen, g.status, float64(w)/2, float64(h)-50, hintScale, t.Accent)
	}
}

func (g *Game) drawTable(screen *ebiten.Image, w, h float32) {
	t := g.theme
	if t.Border {
		vector.FillRect(screen, 0, 0, w, borderWidth, t.Line, false)
		vector.FillRect(screen, 0, h-borderWidth, w, borderWidth, t.Line, false)
		vector.FillRect(screen, 0, 0, borderWidth, h, t.Line, false)
		vector.FillRect(screen, w-borderWidth, 0, borderWidth, h, t.Line, false)
	}
	x := w/2 - netWidth/2
	if !t.DashedNet {
		vector.StrokeLine(screen, w/2, 0, w/2, h, 1, t.Line, true)
		return
	}
	for y := float32(0); y < h; y += netDash + netGap {
		vector.FillRect(screen, x, y, netWidth, netDash, t.Line, false)
	}
}

func (g *Game) drawResult(screen *ebiten.Image, w, h float32) {
	t := g.theme
	vector.FillRect(screen, 0, 0, w, h, t.Overlay, false)
	cx, cy := float64(w)/2, float64(h)/2
	drawCentered(screen, g.state.ResultText(), cx, cy-60, bannerScale, t.Accent)
	drawCentered(screen, "Press SPACE to play again  |  ESC to quit", cx, cy+20, 2, t.Text)
	drawCentered(screen, "C: copy result", cx, cy+60, hintScale, t.Hint)
}

func (g *Game) controlsHint() string {
	if g.state.Rules.Right == match.ControllerComputer {
		return "Player: W / S or Up / Down    |    TAB: rally feed    |    ESC: Quit"
	}
	return "Player 1: W / S    |    Player 2: Up / Down    |    TAB: rally feed    |    ESC: Quit"
}

// drawCentered draws str with basicfont scaled by scale, centered on cx with
// its top edge at top.
func drawCentered(dst *ebiten.Image, str string, cx, top, scale float64, clr color.Color) {
	face := basicfont.Face7x13
	width := float64(font.MeasureString(face, str).Ceil()) * scale
	ascent := float64(face.Metrics().Ascent.Ceil())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-width/2, top+ascent*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, str, face, op)
}
