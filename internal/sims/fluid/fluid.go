package fluid

import (
	"fmt"
	"log"

	"dyeflow/internal/core"
)

// OutOfRangeError is returned by the injection calls when (Row, Col) does not
// address a cell of the grid. Nothing is mutated in that case.
type OutOfRangeError struct {
	Field    string
	Row, Col int
	Size     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fluid: %s cell (%d,%d) outside %dx%d grid", e.Field, e.Row, e.Col, e.Size, e.Size)
}

// Fluid holds the state of a 2-D incompressible fluid carrying dye.
type Fluid struct {
	cfg Config
	n   int

	u   *core.Field
	v   *core.Field
	dye *core.Field

	display []uint8
	dirty   bool
	tick    int
}

// New returns a fluid with the default constants and the given grid edge.
func New(size int) (*Fluid, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fluid configured from the provided options. The
// config is validated first; an invalid config is reported, never clamped.
func NewWithConfig(cfg Config) (*Fluid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Size
	return &Fluid{
		cfg:     cfg,
		n:       n,
		u:       core.NewField(n),
		v:       core.NewField(n),
		dye:     core.NewField(n),
		display: make([]uint8, n*n),
	}, nil
}

// Name returns the simulation identifier.
func (f *Fluid) Name() string { return "fluid" }

// Size reports the grid dimensions.
func (f *Fluid) Size() core.Size { return core.Size{W: f.n, H: f.n} }

// Config returns the construction config.
func (f *Fluid) Config() Config { return f.cfg }

// Tick reports how many steps have run since the last Reset.
func (f *Fluid) Tick() int { return f.tick }

// U exposes the horizontal velocity field. Callers must not mutate it.
func (f *Fluid) U() *core.Field { return f.u }

// V exposes the vertical velocity field. Callers must not mutate it.
func (f *Fluid) V() *core.Field { return f.v }

// Dye exposes the dye concentration field. Callers must not mutate it.
func (f *Fluid) Dye() *core.Field { return f.dye }

// AddU accumulates horizontal velocity into (row, col).
func (f *Fluid) AddU(amount float64, row, col int) error {
	return f.inject(f.u, "u", amount, row, col)
}

// AddV accumulates vertical velocity into (row, col).
func (f *Fluid) AddV(amount float64, row, col int) error {
	return f.inject(f.v, "v", amount, row, col)
}

// AddDye accumulates dye into (row, col).
func (f *Fluid) AddDye(amount float64, row, col int) error {
	if err := f.inject(f.dye, "dye", amount, row, col); err != nil {
		return err
	}
	f.dirty = true
	return nil
}

func (f *Fluid) inject(field *core.Field, name string, amount float64, row, col int) error {
	if !field.InBounds(row, col) {
		return &OutOfRangeError{Field: name, Row: row, Col: col, Size: f.n}
	}
	field.Add(row, col, amount)
	return nil
}

// ClearDye zeroes the dye field. Velocities are untouched.
func (f *Fluid) ClearDye() {
	f.dye.Clear()
	f.dirty = true
}

// Reset clears every field and, when the config asks for puffs, seeds that
// many deterministic dye/velocity puffs. A zero seed falls back to the config
// seed.
func (f *Fluid) Reset(seed int64) {
	f.u.Clear()
	f.v.Clear()
	f.dye.Clear()
	f.tick = 0
	f.dirty = true

	if f.cfg.Puffs <= 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	f.seedPuffs(core.NewRNG(effective))
}

// Step advances the simulation by one tick. The order is fixed: velocities are
// diffused, projected, self-advected and projected again before the dye is
// diffused and carried by the final velocity field.
func (f *Fluid) Step() {
	p := f.cfg.Params
	dt := p.TimeStep

	f.u = Diffuse(f.u, BoundaryHorizontal, dt, p.Viscosity, p.Iterations)
	f.v = Diffuse(f.v, BoundaryVertical, dt, p.Viscosity, p.Iterations)

	Project(f.u, f.v, dt, p.Density, p.Iterations)

	f.u = Advect(f.u, BoundaryHorizontal, dt, f.u, f.v)
	f.v = Advect(f.v, BoundaryVertical, dt, f.u, f.v)

	Project(f.u, f.v, dt, p.Density, p.Iterations)

	f.dye = Diffuse(f.dye, BoundaryCopy, dt, p.DiffusionRate, p.Iterations)
	f.dye = Advect(f.dye, BoundaryCopy, dt, f.u, f.v)

	f.tick++
	f.dirty = true
}

// VelocityAt returns the velocity of the cell containing the point (x, y)
// given in cell units, x along columns and y along rows. Points outside the
// grid report zero.
func (f *Fluid) VelocityAt(x, y float64) (float64, float64) {
	col := int(x)
	row := int(y)
	if x < 0 || y < 0 || !f.u.InBounds(row, col) {
		return 0, 0
	}
	return f.u.At(row, col), f.v.At(row, col)
}

func init() {
	core.Register("fluid", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		sim, err := NewWithConfig(c)
		if err != nil {
			log.Printf("fluid: %v; using defaults", err)
			sim, _ = NewWithConfig(DefaultConfig())
		}
		return sim
	})
}
