// Package scene holds the render surface the sequencer mutates and turns its
// parameters and markers into frame-by-frame poses.
package scene

import (
	"slices"
	"time"

	"github.com/iburimskiy/metabolism-visualization/internal/viz"
)

// Clock reports the current animation time.
type Clock interface {
	Now() time.Duration
}

// Container is a region holding decorative nodes in append order.
type Container struct {
	ID    viz.ContainerID
	Nodes []*viz.Node
}

// Pill is the pill element of one panel.
type Pill struct {
	ID      viz.PillID
	Params  map[string]time.Duration
	Markers map[viz.Marker]time.Duration
}

// Stage derives the sequence stage from the markers present.
func (p *Pill) Stage() viz.Stage {
	if _, ok := p.Markers[viz.MarkerDissolving]; ok {
		return viz.StageDissolving
	}
	if _, ok := p.Markers[viz.MarkerFalling]; ok {
		return viz.StageFalling
	}
	return viz.StageIdle
}

// Since returns when marker m was set and whether it is present.
func (p *Pill) Since(m viz.Marker) (time.Duration, bool) {
	at, ok := p.Markers[m]
	return at, ok
}

// Scene is an in-memory viz.Surface with one container and one pill per
// panel.
type Scene struct {
	clock      Clock
	panels     []*Panel
	containers map[viz.ContainerID]*Container
	pills      map[viz.PillID]*Pill
}

var _ viz.Surface = (*Scene)(nil)

// New builds a scene for the given panels.
func New(clock Clock, panels ...*Panel) *Scene {
	if len(panels) == 0 {
		panels = DefaultPanels()
	}
	s := &Scene{
		clock:      clock,
		panels:     panels,
		containers: make(map[viz.ContainerID]*Container),
		pills:      make(map[viz.PillID]*Pill),
	}
	for _, p := range panels {
		cid, pid := p.Variant.Container(), p.Variant.Pill()
		s.containers[cid] = &Container{ID: cid}
		s.pills[pid] = &Pill{
			ID:      pid,
			Params:  make(map[string]time.Duration),
			Markers: make(map[viz.Marker]time.Duration),
		}
	}
	return s
}

// Now returns the scene clock's time.
func (s *Scene) Now() time.Duration {
	return s.clock.Now()
}

// Panels returns the panels in layout order.
func (s *Scene) Panels() []*Panel {
	return s.panels
}

// Container returns the container for id, or nil.
func (s *Scene) Container(id viz.ContainerID) *Container {
	return s.containers[id]
}

// Pill returns the pill for id, or nil.
func (s *Scene) Pill(id viz.PillID) *Pill {
	return s.pills[id]
}

func (s *Scene) HasContainer(id viz.ContainerID) bool {
	_, ok := s.containers[id]
	return ok
}

func (s *Scene) HasPill(id viz.PillID) bool {
	_, ok := s.pills[id]
	return ok
}

func (s *Scene) AppendNode(id viz.ContainerID, n *viz.Node) {
	if c, ok := s.containers[id]; ok {
		c.Nodes = append(c.Nodes, n)
	}
}

// RemoveNode removes n by identity. Removing a node that is not present is
// a no-op.
func (s *Scene) RemoveNode(id viz.ContainerID, n *viz.Node) {
	c, ok := s.containers[id]
	if !ok {
		return
	}
	if i := slices.Index(c.Nodes, n); i >= 0 {
		c.Nodes = slices.Delete(c.Nodes, i, i+1)
	}
}

func (s *Scene) SetParam(id viz.PillID, name string, value time.Duration) {
	if p, ok := s.pills[id]; ok {
		p.Params[name] = value
	}
}

func (s *Scene) SetMarker(id viz.PillID, m viz.Marker, on bool) {
	p, ok := s.pills[id]
	if !ok {
		return
	}
	if on {
		p.Markers[m] = s.clock.Now()
	} else {
		delete(p.Markers, m)
	}
}

func (s *Scene) ClearMarkers(id viz.PillID) {
	if p, ok := s.pills[id]; ok {
		clear(p.Markers)
	}
}
