// Package term renders the panels into a terminal with tcell.
package term

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/palette"
	"github.com/iburimskiy/metabolism-visualization/internal/scene"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

const (
	headerRows = 4
	footerRows = 3
	minAlpha   = 0.15
	pillCells  = 6
)

// Renderer draws a scene onto a tcell screen, one panel per column band.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// cellRect is a rectangle in cells.
type cellRect struct {
	x, y, w, h int
}

func (r cellRect) frac(cx, cy int) (float64, float64) {
	return (float64(cx-r.x) + 0.5) / float64(r.w), (float64(cy-r.y) + 0.5) / float64(r.h)
}

func (r cellRect) cell(p scene.Pose) (int, int) {
	return r.x + int(p.X*float64(r.w)), r.y + int(p.Y*float64(r.h))
}

func (r cellRect) contains(cx, cy int) bool {
	return cx >= r.x && cx < r.x+r.w && cy >= r.y && cy < r.y+r.h
}

// Draw renders every panel and the status line, then shows the frame.
func (r *Renderer) Draw(sc *scene.Scene, now time.Duration, boost float64, status string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	panels := sc.Panels()
	if len(panels) == 0 || w <= 0 || h <= headerRows+footerRows+1 {
		r.screen.Show()
		return
	}

	pw := w / len(panels)
	for i, p := range panels {
		frame := cellRect{x: i * pw, y: 0, w: pw, h: h - 1}
		r.drawPanel(sc, p, frame, now, boost)
	}
	r.putString(0, h-1, status, tcell.StyleDefault.Foreground(toColor(palette.Parse(palette.Muted))))
	r.screen.Show()
}

func (r *Renderer) drawPanel(sc *scene.Scene, p *scene.Panel, frame cellRect, now time.Duration, boost float64) {
	base := palette.Blend(palette.Background, p.Accent, 0.12)
	area := cellRect{
		x: frame.x,
		y: frame.y + headerRows,
		w: frame.w,
		h: frame.h - headerRows - footerRows,
	}

	// Background and sea.
	bg := make([]colorful.Color, area.w*area.h)
	for cy := frame.y; cy < frame.y+frame.h; cy++ {
		for cx := frame.x; cx < frame.x+frame.w; cx++ {
			c := base
			if area.contains(cx, cy) {
				fx, fy := area.frac(cx, cy)
				if fy >= scene.SeaTop {
					cov := scene.SeaCoverage(p.Waves, fx*config.SeaWidth, scene.SeaViewY(fy), now, boost)
					c = palette.Over(base, p.SeaTint, cov)
				}
				bg[(cy-area.y)*area.w+(cx-area.x)] = c
			}
			r.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(toColor(c)))
		}
	}
	bgAt := func(cx, cy int) colorful.Color {
		return bg[(cy-area.y)*area.w+(cx-area.x)]
	}

	if c := sc.Container(p.Variant.Container()); c != nil {
		for _, n := range c.Nodes {
			var pose scene.Pose
			var ch rune
			switch n.Kind {
			case viz.KindParticle:
				pose = scene.ParticlePose(n, now)
				ch = '·'
				if n.Size >= 5 {
					ch = '•'
				}
			case viz.KindBubble:
				pose = scene.BubblePose(n, now)
				ch = 'o'
				if pose.Size >= 9 {
					ch = 'O'
				}
			}
			if pose.Alpha < minAlpha {
				continue
			}
			color := n.Color
			if n.Kind == viz.KindBubble {
				color = p.Accent
			}
			cx, cy := area.cell(pose)
			if !area.contains(cx, cy) {
				continue
			}
			back := bgAt(cx, cy)
			fg := palette.Over(back, color, pose.Alpha)
			r.screen.SetContent(cx, cy, ch, nil, tcell.StyleDefault.Background(toColor(back)).Foreground(toColor(fg)))
		}
	}

	if pill := sc.Pill(p.Variant.Pill()); pill != nil {
		r.drawPill(pill, p.Accent, area, now, bgAt)
	}

	header := tcell.StyleDefault.Background(toColor(base)).Foreground(toColor(palette.Parse(palette.PanelFill)))
	accent := tcell.StyleDefault.Background(toColor(base)).Foreground(toColor(palette.Parse(p.Accent)))
	r.centerString(frame, frame.y, p.Icon, accent.Bold(true))
	r.centerString(frame, frame.y+1, p.Title, header.Bold(true))
	r.centerString(frame, frame.y+2, p.Subtitle, header.Dim(true))

	dots := make([]rune, 0, p.Dots*2)
	for i := 0; i < p.Dots; i++ {
		if i > 0 {
			dots = append(dots, ' ')
		}
		if i == p.Active {
			dots = append(dots, '●')
		} else {
			dots = append(dots, '○')
		}
	}
	footer := frame.y + frame.h - footerRows
	r.centerString(frame, footer+1, string(dots), accent)
	r.centerString(frame, footer+2, p.Label, header.Dim(true))
}

func (r *Renderer) drawPill(pill *scene.Pill, accent string, area cellRect, now time.Duration, bgAt func(int, int) colorful.Color) {
	pose := scene.PillPose(pill, now)
	if pose.Alpha < minAlpha {
		return
	}
	n := int(math.Round(pillCells * pose.Size))
	if n < 1 {
		n = 1
	}
	cx, cy := area.cell(pose)
	start := cx - n/2
	for i := 0; i < n; i++ {
		x := start + i
		if !area.contains(x, cy) {
			continue
		}
		tone := accent
		if i >= n/2 {
			tone = palette.PillBody
		}
		back := bgAt(x, cy)
		fg := palette.Over(back, tone, pose.Alpha)
		r.screen.SetContent(x, cy, '█', nil, tcell.StyleDefault.Background(toColor(back)).Foreground(toColor(fg)))
	}
}

func (r *Renderer) centerString(frame cellRect, y int, s string, style tcell.Style) {
	x := frame.x + (frame.w-runewidth.StringWidth(s))/2
	if x < frame.x {
		x = frame.x
	}
	r.putString(x, y, s, style)
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func toColor(c colorful.Color) tcell.Color {
	rr, gg, bb := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(rr), int32(gg), int32(bb))
}
