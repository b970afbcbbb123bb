package ui

import (
	"image/color"
	"math"
)

// sample is a grid point (cx, cy in cell units) and its screen position.
type sample struct {
	cx, cy float64
	sx, sy float64
}

// samplePoints spreads roughly targetSamples points evenly over a w×h grid,
// centred so the margins on both sides match.
func samplePoints(w, h, scale int) ([]sample, float64) {
	if w <= 0 || h <= 0 {
		return nil, 0
	}
	if scale <= 0 {
		scale = 1
	}
	const (
		targetSamples = 360.0
		minSpacing    = 6
		maxSpacing    = 20
	)
	spacing := int(math.Sqrt(float64(w*h) / targetSamples))
	spacing = max(minSpacing, min(maxSpacing, spacing))

	countX := (w + spacing - 1) / spacing
	countY := (h + spacing - 1) / spacing
	startX := max(0, (w-1-(countX-1)*spacing)/2)
	startY := max(0, (h-1-(countY-1)*spacing)/2)

	out := make([]sample, 0, countX*countY)
	for yi := 0; yi < countY; yi++ {
		cy := float64(min(startY+yi*spacing, h-1)) + 0.5
		for xi := 0; xi < countX; xi++ {
			cx := float64(min(startX+xi*spacing, w-1)) + 0.5
			out = append(out, sample{cx: cx, cy: cy, sx: cx * float64(scale), sy: cy * float64(scale)})
		}
	}
	return out, float64(spacing * scale)
}

// arrow holds the screen-space segments of a velocity glyph.
type arrow struct {
	tailX, tailY   float64
	bodyX, bodyY   float64
	tipX, tipY     float64
	leftX, leftY   float64
	rightX, rightY float64
	strength       float64
}

// arrowFor lays out a glyph for velocity (vx, vy) centred on (sx, sy). Speeds
// are normalised against maxSpeed. ok is false for calm cells.
func arrowFor(sx, sy, vx, vy, span, maxSpeed float64) (arrow, bool) {
	const (
		calmThreshold = 0.05
		headAngle     = math.Pi / 6
	)
	speed := math.Hypot(vx, vy)
	if speed < calmThreshold || maxSpeed <= 0 {
		return arrow{}, false
	}
	nx, ny := vx/speed, vy/speed
	strength := clamp01(speed / maxSpeed)
	minLength := span * 0.35
	maxLength := span * 0.7
	length := minLength + (maxLength-minLength)*math.Sqrt(strength)
	head := length * 0.3
	tail := length * 0.4

	a := arrow{strength: strength}
	a.tipX = sx + nx*(length-tail)
	a.tipY = sy + ny*(length-tail)
	a.tailX = sx - nx*tail
	a.tailY = sy - ny*tail
	a.bodyX = a.tipX - nx*head
	a.bodyY = a.tipY - ny*head
	angle := math.Atan2(ny, nx)
	a.leftX = a.tipX - math.Cos(angle+headAngle)*head
	a.leftY = a.tipY - math.Sin(angle+headAngle)*head
	a.rightX = a.tipX - math.Cos(angle-headAngle)*head
	a.rightY = a.tipY - math.Sin(angle-headAngle)*head
	return a, true
}

// fillMask shades buf (RGBA, one pixel per mask entry) with tint, alpha and
// glow rising with intensity. Zero cells stay transparent.
func fillMask(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, m := range mask {
		base := i * 4
		intensity := clamp01(float64(m))
		if intensity == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleColorComponent(tint.R, glow)
		buf[base+1] = scaleColorComponent(tint.G, glow)
		buf[base+2] = scaleColorComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
}

func arrowColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(230 + 25*t)),
		G: uint8(math.Round(120 + 60*t)),
		B: uint8(math.Round(60 - 40*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
