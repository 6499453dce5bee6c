package viz

import (
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/config"
)

// Variant identifies one of the two panels.
type Variant int

const (
	Female Variant = iota
	Male
)

// Variants lists every panel in left-to-right order.
var Variants = []Variant{Female, Male}

func (v Variant) String() string {
	switch v {
	case Female:
		return "female"
	case Male:
		return "male"
	}
	return "unknown"
}

// Container returns the handle of the variant's particle container.
func (v Variant) Container() ContainerID {
	return ContainerID(v.String() + "Particles")
}

// Pill returns the handle of the variant's pill.
func (v Variant) Pill() PillID {
	return PillID(v.String() + "Pill")
}

// ContainerID is an opaque handle to a region decorative nodes are appended to.
type ContainerID string

// PillID is an opaque handle to a pill element.
type PillID string

// Marker is a state class set on a pill.
type Marker string

const (
	MarkerFalling    Marker = "falling"
	MarkerDissolving Marker = "dissolving"
)

// Pill timing parameters read by the styling layer.
const (
	ParamFallDuration     = "--fall-duration"
	ParamDissolveDuration = "--dissolve-duration"
)

// Stage is the sequence position of one pill.
type Stage int

const (
	StageIdle Stage = iota
	StageFalling
	StageDissolving
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageFalling:
		return "falling"
	case StageDissolving:
		return "dissolving"
	}
	return "unknown"
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ParticleConfig controls background particle generation.
type ParticleConfig struct {
	Count int
	Speed float64
	Size  Range
}

// Timing holds a variant's fixed sequence constants.
type Timing struct {
	StartOffset  time.Duration
	Fall         time.Duration
	Dissolve     time.Duration
	BubbleCount  int
	BubbleWindow time.Duration
}

// Profile is the full parameter set of one variant.
type Profile struct {
	Variant   Variant
	Color     string
	Particles ParticleConfig
	Timing    Timing
}

// DefaultProfiles returns the female and male profiles.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Variant: Female,
			Color:   config.FemaleColor,
			Particles: ParticleConfig{
				Count: config.FemaleParticles,
				Speed: config.FemaleSpeed,
				Size:  Range{Min: config.FemaleMinSize, Max: config.FemaleMaxSize},
			},
			Timing: Timing{
				StartOffset:  config.FemaleStartOffset,
				Fall:         config.FemaleFall,
				Dissolve:     config.FemaleDissolve,
				BubbleCount:  config.FemaleBubbles,
				BubbleWindow: config.FemaleBubbleWindow,
			},
		},
		{
			Variant: Male,
			Color:   config.MaleColor,
			Particles: ParticleConfig{
				Count: config.MaleParticles,
				Speed: config.MaleSpeed,
				Size:  Range{Min: config.MaleMinSize, Max: config.MaleMaxSize},
			},
			Timing: Timing{
				StartOffset:  config.MaleStartOffset,
				Fall:         config.MaleFall,
				Dissolve:     config.MaleDissolve,
				BubbleCount:  config.MaleBubbles,
				BubbleWindow: config.MaleBubbleWindow,
			},
		},
	}
}

// NodeKind distinguishes decorative nodes.
type NodeKind int

const (
	KindParticle NodeKind = iota
	KindBubble
)

// Node is a decorative element appended to a container. Positions are
// percentages of the container.
type Node struct {
	ID    uint64
	Kind  NodeKind
	Color string
	Size  float64
	X     float64

	// Particle
	Y        float64
	Speed    float64
	Delay    time.Duration
	Duration time.Duration

	// Bubble
	Bottom   float64
	Lifetime time.Duration
	Born     time.Duration
}

// Surface is the render capability the sequencer mutates.
type Surface interface {
	HasContainer(id ContainerID) bool
	HasPill(id PillID) bool
	AppendNode(id ContainerID, n *Node)
	RemoveNode(id ContainerID, n *Node)
	SetParam(id PillID, name string, value time.Duration)
	SetMarker(id PillID, m Marker, on bool)
	ClearMarkers(id PillID)
}
