package fluid

import (
	"errors"
	"fmt"
	"strconv"
)

// MinSize is the smallest supported grid edge, border included.
const MinSize = 10

// ErrGridTooSmall is wrapped by Validate when the grid edge is below MinSize.
var ErrGridTooSmall = errors.New("fluid: grid size too small")

// Params holds the physical and numerical constants of the solver.
type Params struct {
	Density       float64
	Viscosity     float64
	DiffusionRate float64
	TimeStep      float64
	Iterations    int
}

// Config controls the fluid simulation. Everything is fixed at construction.
type Config struct {
	// Size is the grid edge N including the 1-cell border.
	Size int

	// Seed drives the optional dye puffs placed by Reset.
	Seed int64
	// Puffs is the number of random dye/velocity puffs Reset seeds.
	Puffs int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 150,
		Seed: 42,
		Params: Params{
			Density:       0.01,
			Viscosity:     0.00005,
			DiffusionRate: 0.00005,
			TimeStep:      0.15,
			Iterations:    30,
		},
	}
}

// Validate reports the first constant that would make the solver ill-formed.
func (c Config) Validate() error {
	if c.Size < MinSize {
		return fmt.Errorf("%w: size must be >= %d, got %d", ErrGridTooSmall, MinSize, c.Size)
	}
	p := c.Params
	if p.Density <= 0 {
		return fmt.Errorf("fluid: density must be positive, got %g", p.Density)
	}
	if p.Viscosity < 0 {
		return fmt.Errorf("fluid: viscosity must not be negative, got %g", p.Viscosity)
	}
	if p.DiffusionRate < 0 {
		return fmt.Errorf("fluid: diffusion rate must not be negative, got %g", p.DiffusionRate)
	}
	if p.TimeStep <= 0 {
		return fmt.Errorf("fluid: time step must be positive, got %g", p.TimeStep)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("fluid: iterations must be >= 1, got %d", p.Iterations)
	}
	if c.Puffs < 0 {
		return fmt.Errorf("fluid: puffs must not be negative, got %d", c.Puffs)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["puffs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Puffs = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Density = parsed
		}
	}
	if v, ok := cfg["viscosity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Viscosity = parsed
		}
	}
	if v, ok := cfg["diffusion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DiffusionRate = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.TimeStep = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.Iterations = parsed
		}
	}
	return c
}
