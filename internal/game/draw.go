package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/palette"
	"github.com/iburimskiy/metabolism-visualization/internal/scene"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

const (
	panelMargin = 8
	footerSpace = 36
	seaColumn   = 4
	pillLength  = 34
	pillGirth   = 14
	dotRadius   = 4
	dotSpacing  = 16
	charWidth   = 6
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Parse(palette.Background))

	now := g.scene.Now()
	panels := g.scene.Panels()
	pw := panelWidth(g.width, len(panels))
	for i, p := range panels {
		frame := rect{
			x: float32(i*pw + panelMargin),
			y: panelMargin,
			w: float32(pw - 2*panelMargin),
			h: float32(g.height - 2*panelMargin),
		}
		g.drawPanel(screen, p, frame, now)
	}

	status := "cycle " + formatDuration(g.seq.CycleTime())
	if g.paused {
		status += " | paused - Space to resume"
	}
	ebitenutil.DebugPrintAt(screen, status, panelMargin+4, g.height-panelMargin-16)
}

func (g *Game) drawPanel(screen *ebiten.Image, p *scene.Panel, frame rect, now time.Duration) {
	fill := palette.Blend(palette.Background, p.Accent, 0.12)
	vector.DrawFilledRect(screen, frame.x, frame.y, frame.w, frame.h, fill, false)
	vector.StrokeRect(screen, frame.x, frame.y, frame.w, frame.h, 1, palette.RGBA(p.Accent, 0.5), false)

	g.drawHeader(screen, p, frame)

	area := rect{
		x: frame.x,
		y: frame.y + config.HeaderHeight,
		w: frame.w,
		h: frame.h - config.HeaderHeight - footerSpace,
	}
	g.drawSea(screen, p, area, now)

	if c := g.scene.Container(p.Variant.Container()); c != nil {
		g.drawNodes(screen, c, p.Accent, area, now)
	}
	if pill := g.scene.Pill(p.Variant.Pill()); pill != nil {
		g.drawPill(screen, pill, p.Accent, area, now)
	}
	g.drawFooter(screen, p, frame)
}

func (g *Game) drawHeader(screen *ebiten.Image, p *scene.Panel, frame rect) {
	cx := frame.x + frame.w/2
	vector.DrawFilledCircle(screen, cx, frame.y+24, 14, palette.RGBA(p.Accent, 0.9), true)
	centerText(screen, p.Icon, cx, frame.y+16)
	centerText(screen, p.Title, cx, frame.y+46)
	centerText(screen, p.Subtitle, cx, frame.y+64)
}

func (g *Game) drawSea(screen *ebiten.Image, p *scene.Panel, area rect, now time.Duration) {
	boost := g.level * config.LevelBoost
	bottom := area.y + area.h
	for _, w := range p.Waves {
		clr := palette.RGBA(p.SeaTint, w.Opacity)
		for px := float32(0); px < area.w; px += seaColumn {
			vx := float64(px/area.w) * config.SeaWidth
			top := area.y + float32(scene.SeaY(w.Height(vx, now, boost)))*area.h
			vector.DrawFilledRect(screen, area.x+px, top, seaColumn, bottom-top, clr, false)
		}
	}
}

func (g *Game) drawNodes(screen *ebiten.Image, c *scene.Container, accent string, area rect, now time.Duration) {
	for _, n := range c.Nodes {
		switch n.Kind {
		case viz.KindParticle:
			pose := scene.ParticlePose(n, now)
			if pose.Alpha <= 0 {
				continue
			}
			x, y := area.at(pose)
			vector.DrawFilledCircle(screen, x, y, float32(pose.Size/2), palette.RGBA(n.Color, pose.Alpha), true)
		case viz.KindBubble:
			pose := scene.BubblePose(n, now)
			if pose.Alpha <= 0 {
				continue
			}
			x, y := area.at(pose)
			r := float32(pose.Size / 2)
			vector.DrawFilledCircle(screen, x, y, r, palette.RGBA(palette.PanelFill, pose.Alpha*0.25), true)
			vector.StrokeCircle(screen, x, y, r, 1.5, palette.RGBA(accent, pose.Alpha), true)
		}
	}
}

func (g *Game) drawPill(screen *ebiten.Image, pill *scene.Pill, accent string, area rect, now time.Duration) {
	pose := scene.PillPose(pill, now)
	if pose.Alpha <= 0 {
		return
	}
	x, y := area.at(pose)
	half := float32(pillLength*pose.Size) / 2
	r := float32(pillGirth*pose.Size) / 2

	// Two-tone capsule: accent half on the left, light half on the right.
	left := palette.RGBA(accent, pose.Alpha)
	right := palette.RGBA(palette.PillBody, pose.Alpha)
	vector.DrawFilledCircle(screen, x-half+r, y, r, left, true)
	vector.DrawFilledRect(screen, x-half+r, y-r, half-r, 2*r, left, false)
	vector.DrawFilledRect(screen, x, y-r, half-r, 2*r, right, false)
	vector.DrawFilledCircle(screen, x+half-r, y, r, right, true)
}

func (g *Game) drawFooter(screen *ebiten.Image, p *scene.Panel, frame rect) {
	cx := frame.x + frame.w/2
	y := frame.y + frame.h - footerSpace + 8
	start := cx - float32(p.Dots-1)*dotSpacing/2
	for i := 0; i < p.Dots; i++ {
		x := start + float32(i)*dotSpacing
		if i == p.Active {
			vector.DrawFilledCircle(screen, x, y, dotRadius+1, palette.RGBA(p.Accent, 1), true)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, dotRadius, palette.RGBA(palette.Muted, 0.6), true)
	}
	centerText(screen, p.Label, cx, y+8)
}
