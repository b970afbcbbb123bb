//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"dyeflow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type velocityProvider interface {
	VelocityAt(x, y float64) (float64, float64)
}

type divergenceProvider interface {
	DivergenceMask() []float32
}

// Overlay draws optional debugging visuals on top of the dye image: velocity
// arrows (key 1) and the divergence residual (key 2).
type Overlay struct {
	sim            core.Sim
	scale          int
	showVelocity   bool
	showDivergence bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image

	samples []sample
	span    float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	size := sim.Size()
	o.samples, o.span = samplePoints(size.W, size.H, scale)
	return o
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDivergence = !o.showDivergence
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showDivergence {
		if provider, ok := o.sim.(divergenceProvider); ok {
			o.drawMask(screen, provider.DivergenceMask(), color.RGBA{R: 223, G: 64, B: 164})
		}
	}
	if o.showVelocity {
		if provider, ok := o.sim.(velocityProvider); ok {
			o.drawVelocity(screen, provider)
		}
	}
}

func (o *Overlay) drawVelocity(screen *ebiten.Image, provider velocityProvider) {
	maxSpeed := 0.0
	speeds := make([][2]float64, len(o.samples))
	for i, s := range o.samples {
		vx, vy := provider.VelocityAt(s.cx, s.cy)
		speeds[i] = [2]float64{vx, vy}
		maxSpeed = math.Max(maxSpeed, math.Hypot(vx, vy))
	}
	for i, s := range o.samples {
		a, ok := arrowFor(s.sx, s.sy, speeds[i][0], speeds[i][1], o.span, maxSpeed)
		if !ok {
			continue
		}
		thickness := math.Max(1, float64(o.scale)*(0.65+0.4*a.strength))
		col := arrowColor(a.strength)
		o.drawLine(screen, a.tailX, a.tailY, a.bodyX, a.bodyY, thickness, col)
		o.drawLine(screen, a.tipX, a.tipY, a.leftX, a.leftY, thickness*0.85, col)
		o.drawLine(screen, a.tipX, a.tipY, a.rightX, a.rightY, thickness*0.85, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 || len(mask) != total {
		return
	}
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	fillMask(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
