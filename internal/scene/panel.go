package scene

import (
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

// WaveLayer is one band of the sea, defined in the 800x150 sea viewBox.
// The layer sways horizontally from 0 to Sway and back over Period.
type WaveLayer struct {
	Baseline float64
	Crest    float64
	Opacity  float64
	Sway     float64
	Period   time.Duration
}

// Panel is the static chrome of one side.
type Panel struct {
	Variant  viz.Variant
	Icon     string
	Title    string
	Subtitle string
	Accent   string
	SeaTint  string
	Waves    []WaveLayer
	Dots     int
	Active   int
	Label    string
}

// DefaultPanels returns the female and male panels.
func DefaultPanels() []*Panel {
	return []*Panel{
		{
			Variant:  viz.Female,
			Icon:     "♀",
			Title:    "Female Metabolism",
			Subtitle: "Sustained Processing",
			Accent:   config.FemaleColor,
			SeaTint:  config.FemaleSeaTint,
			Waves: []WaveLayer{
				{Baseline: 40, Crest: 30, Opacity: 0.7, Sway: -120, Period: 14 * time.Second},
				{Baseline: 60, Crest: 40, Opacity: 0.5, Sway: -100, Period: 12 * time.Second},
				{Baseline: 80, Crest: 40, Opacity: 0.3, Sway: 80, Period: 8 * time.Second},
				{Baseline: 100, Crest: 20, Opacity: 0.2, Sway: -60, Period: 15 * time.Second},
			},
			Dots:   4,
			Active: 2,
			Label:  "INGESTION",
		},
		{
			Variant:  viz.Male,
			Icon:     "♂",
			Title:    "Male Metabolism",
			Subtitle: "Rapid Processing",
			Accent:   config.MaleColor,
			SeaTint:  config.MaleSeaTint,
			Waves: []WaveLayer{
				{Baseline: 45, Crest: 35, Opacity: 0.6, Sway: -110, Period: 11 * time.Second},
				{Baseline: 70, Crest: 40, Opacity: 0.4, Sway: -100, Period: 8 * time.Second},
				{Baseline: 90, Crest: 40, Opacity: 0.3, Sway: 120, Period: 5 * time.Second},
				{Baseline: 110, Crest: 20, Opacity: 0.2, Sway: -90, Period: 9 * time.Second},
			},
			Dots:   4,
			Active: 2,
			Label:  "INGESTION",
		},
	}
}
