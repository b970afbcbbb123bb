package fluid

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"dyeflow/internal/core"
)

// Stats is a snapshot of conserved and residual quantities after a tick.
type Stats struct {
	Tick int
	// Dye is the total dye over every cell, border included.
	Dye float64
	// MaxDivergence is the largest |divergence| over the interior.
	MaxDivergence float64
	// Energy is the kinetic energy 0.5·Σ(u²+v²).
	Energy float64
}

// Stats measures the current state.
func (f *Fluid) Stats() Stats {
	u, v := f.u.Values(), f.v.Values()
	div := Divergence(f.u, f.v).Values()
	return Stats{
		Tick:          f.tick,
		Dye:           f.dye.Sum(),
		MaxDivergence: floats.Norm(div, math.Inf(1)),
		Energy:        0.5 * (floats.Dot(u, u) + floats.Dot(v, v)),
	}
}

// Parameters reports the construction constants and live diagnostics for
// the HUD.
func (f *Fluid) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	s := f.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", f.cfg.Size),
				int64Param("seed", "Seed", f.cfg.Seed),
				intParam("puffs", "Puffs", f.cfg.Puffs),
			},
		},
		{
			Name: "Fluid",
			Params: []core.Parameter{
				floatParam("density", "Density", p.Density),
				floatParam("viscosity", "Viscosity", p.Viscosity),
				floatParam("diffusion", "Diffusion rate", p.DiffusionRate),
			},
		},
		{
			Name: "Solver",
			Params: []core.Parameter{
				floatParam("dt", "Time step", p.TimeStep),
				intParam("iterations", "Gauss-Seidel iterations", p.Iterations),
			},
		},
		{
			Name:    "Diagnostics",
			Summary: "measured after the last tick",
			Params: []core.Parameter{
				intParam("tick", "Tick", s.Tick),
				floatParam("dye_total", "Dye total", s.Dye),
				floatParam("max_divergence", "Max divergence", s.MaxDivergence),
				floatParam("energy", "Kinetic energy", s.Energy),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'g', 6, 64),
	}
}
