package main

import (
	"math"
	"testing"

	"dyeflow/internal/sims/fluid"
)

func TestParamGridCoversEveryPair(t *testing.T) {
	sets := paramGrid([]int{5, 10}, []float64{0.1, 0.2, 0.3})
	if len(sets) != 6 {
		t.Fatalf("expected 6 sets, got %d", len(sets))
	}
	seen := map[paramSet]bool{}
	for _, s := range sets {
		seen[s] = true
	}
	if len(seen) != 6 {
		t.Fatal("parameter sets must be unique")
	}
}

func TestRankPutsUnstableLast(t *testing.T) {
	all := []sweepResult{
		{params: paramSet{iterations: 1}, result: fluid.ScenarioResult{FinalDivergence: math.NaN()}},
		{params: paramSet{iterations: 2}, result: fluid.ScenarioResult{FinalDivergence: 3}},
		{params: paramSet{iterations: 3}, result: fluid.ScenarioResult{FinalDivergence: 1, InjectedDye: 10, FinalDye: 15}},
		{params: paramSet{iterations: 4}, result: fluid.ScenarioResult{FinalDivergence: 1, InjectedDye: 10, FinalDye: 11}},
	}
	rank(all)
	want := []int{4, 3, 2, 1}
	for i, w := range want {
		if all[i].params.iterations != w {
			t.Fatalf("position %d: got iterations %d, want %d", i, all[i].params.iterations, w)
		}
	}
}

func TestSweepRunsEverySet(t *testing.T) {
	base := fluid.DefaultConfig()
	base.Size = 16
	sets := paramGrid([]int{5, 20}, []float64{0.1})
	results := sweep(base, sets, 10, 2)
	if len(results) != len(sets) {
		t.Fatalf("expected %d results, got %d", len(sets), len(results))
	}
	for _, r := range results {
		if r.err != nil {
			t.Fatal(r.err)
		}
		if len(r.residual) != 10 {
			t.Fatalf("%s: expected 10 residual samples, got %d", r.params, len(r.residual))
		}
	}
}
