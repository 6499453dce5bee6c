package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/metabolism-visualization/internal/scene"
)

// rect is a screen-space rectangle.
type rect struct {
	x, y, w, h float32
}

// at maps a pose's fractional position into the rectangle.
func (r rect) at(p scene.Pose) (float32, float32) {
	return r.x + float32(p.X)*r.w, r.y + float32(p.Y)*r.h
}

func centerText(screen *ebiten.Image, s string, cx, y float32) {
	w := len([]rune(s)) * charWidth
	ebitenutil.DebugPrintAt(screen, s, int(cx)-w/2, int(y))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// panelWidth splits width evenly between n panels.
func panelWidth(width, n int) int {
	if n <= 0 {
		return 0
	}
	return width / n
}
