package config

import "image/color"

const (
	WindowTitle   = "Stereo Galaxy - cross your eyes to fuse the two images, Esc/Q: Quit"
	InitialWidth  = 512
	InitialHeight = 512

	// Stereo rig
	NearDist         = 1.0
	FarMultiplier    = 64.0
	FocalDist        = 2.0
	OcularSeparation = FocalDist / 12.0
	FovDegX          = 25.0

	// Object placement
	ObjectDistOffset = 0.5
	ObjectElevation  = 0.0
	ObjectScale      = 0.45
	GalaxyScale      = 0.5

	// Animation
	RotationDegPerSec = 30.0
	GalaxyTiltDeg     = 30.0

	// Galaxy shape
	NumParticles  = 1024
	NumSpiralArms = 3
	SpiralDensity = 2.0
	SpiralWidth   = 0.2

	// Rasterization
	WireframeLineWidth = 4.0
	PointParticleSize  = 4.0

	// HUD
	FrameRingSize = 120
	HUDX          = 8
	HUDY          = 8
)

var (
	ColorFront      = color.RGBA{R: 165, G: 0, B: 0, A: 255}
	ColorBack       = color.RGBA{R: 0, G: 125, B: 0, A: 255}
	ColorConnecting = color.RGBA{R: 0, G: 0, B: 155, A: 255}
	ColorClear      = color.RGBA{A: 255}
)
