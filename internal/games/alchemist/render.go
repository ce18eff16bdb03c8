package alchemist

import (
	"fmt"
	"math"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/entity"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// Banner texts.
const (
	killedMain      = "Mastering alchemy is not that easy!"
	killedSecondary = "Press R to restart, or ESC to exit"
	wonMain         = "Home's safe for now"
	wonSecondary    = "but alchemy is tricky.. be careful."
	pausedMain      = "Paused"
	pausedSecondary = "Press P to resume"
)

// Render draws the arena into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCenteredColored(dst.Height()/2-1, "The level catalog cannot be played:", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.current == nil {
		return
	}

	g.drawFloor(dst)
	g.set.Each(func(e entity.Entity) {
		switch e.Kind() {
		case entity.KindItem:
			g.drawItem(dst, e.(*entity.Item))
		case entity.KindEnemy:
			g.drawEnemy(dst, e.(*entity.Enemy))
		case entity.KindPlayer:
			g.drawPlayer(dst, e.(*entity.Player))
		case entity.KindWeapon:
			g.drawWeapon(dst, e.(*entity.Weapon))
		case entity.KindParticle:
			g.drawParticle(dst, e.(*entity.Particle))
		}
	})
	g.drawHUD(dst)

	if g.current.BannerVisible(g.now) {
		main, secondary := g.current.Banner()
		g.drawBanner(dst, main, secondary, core.ColorBrightYellow)
	}
	if g.killed && g.status != StatusPaused {
		g.drawBanner(dst, killedMain, killedSecondary, core.ColorBrightRed)
	}
	if g.finalWin {
		g.drawBanner(dst, wonMain, wonSecondary, core.ColorBrightGreen)
	}

	switch {
	case g.status == StatusPaused:
		dst.Tint(core.ColorGray)
		g.drawBanner(dst, pausedMain, pausedSecondary, core.ColorBrightWhite)
	case g.Fading():
		dst.Tint(core.ColorGray)
	}
}

// Fading reports whether the won level is in its last second, when the
// screen fades out.
func (g *Game) Fading() bool {
	return g.status == StatusWonTransition && g.current.Score.QuitTransition(g.now)
}

func (g *Game) drawFloor(dst *core.Screen) {
	top := g.cell(physics.V(0, g.cfg.Arena.TopMargin)).Y - 1
	if top >= 0 {
		dst.DrawHLine(0, top, dst.Width(), '─')
	}
}

// hudBox returns the cell rectangle of the score box.
func (g *Game) hudBox() core.Rect {
	text := g.hudText()
	return core.NewRect(0, 0, len(text)+4, 3)
}

func (g *Game) hudText() string {
	return fmt.Sprintf("Potions left: %d", g.current.Score.Remaining())
}

// HUDHidden reports whether the player stands under the score box, which
// then dims so it does not cover the player.
func (g *Game) HUDHidden() bool {
	p := g.set.Player
	if p == nil {
		return false
	}
	return g.cellRect(p.HitBox()).Intersects(g.hudBox())
}

func (g *Game) drawHUD(dst *core.Screen) {
	box := g.hudBox()
	color := core.ColorYellow
	if g.HUDHidden() {
		color = core.ColorGray
	}
	if !g.HUDHidden() {
		dst.DrawRect(box, ' ')
	}
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+2, box.Y+1, g.hudText(), color)
	lvl := fmt.Sprintf(" Level %d: %s ", g.current.Ordinal, g.current.Title)
	dst.DrawTextColored(dst.Width()-len(lvl)-1, 1, lvl, core.ColorGray)
}

func (g *Game) drawBanner(dst *core.Screen, main, secondary string, color core.Color) {
	y := dst.Height()/2 - 1
	width := max(len(main), len(secondary)) + 6
	box := core.NewRect((dst.Width()-width)/2, y-1, width, 4)
	dst.DrawRect(box, ' ')
	dst.DrawTextCenteredColored(y, main, color)
	dst.DrawTextCenteredColored(y+1, secondary, core.ColorWhite)
}

func (g *Game) drawPlayer(dst *core.Screen, p *entity.Player) {
	glyph, color := '@', core.ColorBrightCyan
	if p.Frame() == 1 {
		glyph = '&'
	}
	if !p.Alive() {
		glyph, color = 'x', core.ColorGray
	}
	dst.DrawRectColored(g.cellRect(p.HitBox()), glyph, color)
}

func (g *Game) drawEnemy(dst *core.Screen, e *entity.Enemy) {
	glyph := 'E'
	if r := []rune(e.Spec.Glyph); len(r) > 0 {
		glyph = r[0]
	}
	color := e.Color
	if e.Image == entity.ImageHurt {
		color = core.ColorBrightRed
	}
	dst.DrawRectColored(g.cellRect(e.HitBox()), glyph, color)
}

func (g *Game) drawItem(dst *core.Screen, i *entity.Item) {
	dst.DrawRectColored(g.cellRect(i.HitBox()), '!', i.Color.ScreenColor())
}

func (g *Game) drawParticle(dst *core.Screen, p *entity.Particle) {
	c := g.cell(p.Body().Pos)
	dst.SetColored(c.X, c.Y, '▪', p.Color)
}

// drawWeapon draws the blade as a line along its rotated axis.
func (g *Game) drawWeapon(dst *core.Screen, w *entity.Weapon) {
	if !w.Active || !w.Alive() {
		return
	}
	axis := physics.V(0, -1).Rotate(w.Angle * ownerFacing(g.set.Player))
	glyph := bladeGlyph(axis)
	center := w.Center()
	half := g.cfg.Weapon.Height / 2
	step := min(g.cfg.Arena.CellWidth, g.cfg.Arena.CellHeight) / 2
	for t := -half; t <= half; t += step {
		c := g.cell(center.Add(axis.Scale(t)))
		dst.SetColored(c.X, c.Y, glyph, core.ColorBrightWhite)
	}
}

func ownerFacing(p *entity.Player) float64 {
	if p == nil {
		return 1
	}
	return p.Facing.Sign()
}

func bladeGlyph(axis physics.Vec) rune {
	const flat = 0.38
	switch {
	case math.Abs(axis.X) < flat:
		return '|'
	case math.Abs(axis.Y) < flat:
		return '-'
	case axis.X*axis.Y < 0:
		return '/'
	default:
		return '\\'
	}
}

// cell converts an arena point to the terminal cell containing it.
func (g *Game) cell(v physics.Vec) core.Rect {
	return core.NewRect(
		int(math.Floor(v.X/g.cfg.Arena.CellWidth)),
		int(math.Floor(v.Y/g.cfg.Arena.CellHeight)),
		1, 1,
	)
}

// cellRect converts a hit-box to the cells it covers. Every box covers at
// least one cell.
func (g *Game) cellRect(b physics.Box) core.Rect {
	x0 := int(math.Floor(b.Left() / g.cfg.Arena.CellWidth))
	y0 := int(math.Floor(b.Top() / g.cfg.Arena.CellHeight))
	x1 := int(math.Ceil(b.Right() / g.cfg.Arena.CellWidth))
	y1 := int(math.Ceil(b.Bottom() / g.cfg.Arena.CellHeight))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
