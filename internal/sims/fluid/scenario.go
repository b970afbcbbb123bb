package fluid

// JetInterval is the number of ticks between jets in the jet scenario.
const JetInterval = 20

// ScenarioResult captures telemetry from a deterministic jet run used by the
// sweep and record tools.
type ScenarioResult struct {
	// Steps reports how many ticks were simulated.
	Steps int
	// InjectedDye totals the dye added by every jet.
	InjectedDye float64
	// FinalDye is the dye left on the grid after the last tick.
	FinalDye float64
	// PeakDivergence is the largest post-tick MaxDivergence seen.
	PeakDivergence float64
	// FinalDivergence is MaxDivergence after the last tick.
	FinalDivergence float64
	// PeakEnergy is the largest kinetic energy seen.
	PeakEnergy float64
}

// DyeDrift is the relative difference between the dye left on the grid and
// the dye injected.
func (r ScenarioResult) DyeDrift() float64 {
	if r.InjectedDye == 0 {
		return 0
	}
	return (r.FinalDye - r.InjectedDye) / r.InjectedDye
}

// RunScenario fires an upward jet from the bottom wall every JetInterval
// ticks, starting before the first tick, and advances the fluid for the
// requested number of steps. observe, when non-nil, receives the stats after
// every tick.
func RunScenario(cfg Config, steps int, observe func(Stats)) (ScenarioResult, error) {
	sim, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	return sim.runJets(steps, observe, nil)
}

func (f *Fluid) runJets(steps int, observe func(Stats), afterTick func(*Fluid) error) (ScenarioResult, error) {
	var result ScenarioResult
	for step := 0; step < steps; step++ {
		if step%JetInterval == 0 {
			if err := f.Shoot(JetUp); err != nil {
				return result, err
			}
			result.InjectedDye += JetDye
		}
		f.Step()
		s := f.Stats()
		if s.MaxDivergence > result.PeakDivergence {
			result.PeakDivergence = s.MaxDivergence
		}
		if s.Energy > result.PeakEnergy {
			result.PeakEnergy = s.Energy
		}
		result.FinalDivergence = s.MaxDivergence
		result.FinalDye = s.Dye
		result.Steps = step + 1
		if observe != nil {
			observe(s)
		}
		if afterTick != nil {
			if err := afterTick(f); err != nil {
				return result, err
			}
		}
	}
	return result, nil
}

// RunScenarioWith is RunScenario on an existing fluid; afterTick runs after
// each tick's stats are recorded and may abort the run by returning an error.
func RunScenarioWith(f *Fluid, steps int, observe func(Stats), afterTick func(*Fluid) error) (ScenarioResult, error) {
	return f.runJets(steps, observe, afterTick)
}
