package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Header band above each panel's visualization area
	HeaderHeight = 96

	// Audio tap
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	LevelBoost      = 0.35

	// Sea viewBox the wave layers are defined in
	SeaWidth  = 800
	SeaHeight = 150
)

// Sequence timing shared by both panels
const (
	ResetInterval = 10 * time.Second
	SettleDelay   = 200 * time.Millisecond

	ParticleMaxDelay    = 6 * time.Second
	ParticleMinDuration = 8 * time.Second
	ParticleMaxDuration = 14 * time.Second

	BubbleMinSize     = 4.0
	BubbleMaxSize     = 12.0
	BubbleMinX        = 45.0
	BubbleMaxX        = 55.0
	BubbleAnchor      = 40.0
	BubbleMinLifetime = 2000 * time.Millisecond
	BubbleMaxLifetime = 3500 * time.Millisecond
)

// Female panel: slower, sustained
const (
	FemaleColor        = "#ec4899"
	FemaleSeaTint      = "#fce7f3"
	FemaleParticles    = 18
	FemaleSpeed        = 0.6
	FemaleMinSize      = 3.0
	FemaleMaxSize      = 7.0
	FemaleStartOffset  = 1000 * time.Millisecond
	FemaleFall         = 4000 * time.Millisecond
	FemaleDissolve     = 6000 * time.Millisecond
	FemaleBubbles      = 15
	FemaleBubbleWindow = 5000 * time.Millisecond
)

// Male panel: faster, rapid
const (
	MaleColor        = "#3b82f6"
	MaleSeaTint      = "#dbeafe"
	MaleParticles    = 20
	MaleSpeed        = 0.8
	MaleMinSize      = 3.0
	MaleMaxSize      = 8.0
	MaleStartOffset  = 1200 * time.Millisecond
	MaleFall         = 2500 * time.Millisecond
	MaleDissolve     = 3500 * time.Millisecond
	MaleBubbles      = 18
	MaleBubbleWindow = 3000 * time.Millisecond
)
