package palette

import "testing"

func TestRGBA(t *testing.T) {
	c := RGBA("#ec4899", 0.5)
	if c.R != 0xec || c.G != 0x48 || c.B != 0x99 {
		t.Fatalf("unexpected channels %+v", c)
	}
	if c.A != 127 {
		t.Errorf("expected alpha 127, got %d", c.A)
	}
	if RGBA("#000000", 3).A != 255 {
		t.Error("alpha should clamp to 255")
	}
}

func TestParseFallback(t *testing.T) {
	r, g, b := Parse("not a color").RGB255()
	if r != g || g != b {
		t.Fatalf("expected grey fallback, got %d,%d,%d", r, g, b)
	}
}

func TestOverEndpoints(t *testing.T) {
	tests := []struct {
		alpha float64
		want  string
	}{
		{0, "#ffffff"},
		{1, "#3b82f6"},
		{-1, "#ffffff"},
	}
	for _, tt := range tests {
		if got := Over(Parse("#ffffff"), "#3b82f6", tt.alpha).Hex(); got != tt.want {
			t.Errorf("alpha %v: got %s, want %s", tt.alpha, got, tt.want)
		}
	}
}
