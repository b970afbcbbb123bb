package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"dyeflow/internal/report"
	"dyeflow/internal/sims/fluid"
)

type paramSet struct {
	iterations int
	timeStep   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("iters=%d dt=%.3f", p.iterations, p.timeStep)
}

type sweepResult struct {
	params   paramSet
	result   fluid.ScenarioResult
	residual []float64
	err      error
}

func main() {
	steps := flag.Int("steps", 120, "ticks to simulate per scenario")
	size := flag.Int("size", 64, "grid edge length")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "rows to print and series to plot")
	plotPath := flag.String("plot", "", "write the residual divergence of the top runs to this image")
	flag.Parse()

	base := fluid.DefaultConfig()
	base.Size = *size
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	sets := paramGrid([]int{5, 10, 20, 30, 50}, []float64{0.05, 0.1, 0.15, 0.2})
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d grid)\n", len(sets), *workers, *steps, *size, *size)

	start := time.Now()
	all := sweep(base, sets, *steps, *workers)
	elapsed := time.Since(start)

	var ok []sweepResult
	for _, res := range all {
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		ok = append(ok, res)
	}
	rank(ok)

	fmt.Printf("\nTop %d results by residual divergence (elapsed %s):\n", min(*top, len(ok)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(ok) && i < *top; i++ {
		r := ok[i].result
		fmt.Printf("%2d) residual=%.4g peak=%.4g dye=%.1f/%.1f drift=%+.3f energy=%.4g %s\n",
			i+1, r.FinalDivergence, r.PeakDivergence, r.FinalDye, r.InjectedDye, r.DyeDrift(), r.PeakEnergy, ok[i].params)
	}

	if *plotPath != "" && len(ok) > 0 {
		var series []report.Series
		for i := 0; i < len(ok) && i < *top; i++ {
			series = append(series, report.Series{Name: ok[i].params.String(), Values: ok[i].residual})
		}
		if err := report.PlotSeries(*plotPath, report.DefaultChart(), series); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nWrote %s\n", *plotPath)
	}
}

func paramGrid(iterations []int, timeSteps []float64) []paramSet {
	sets := make([]paramSet, 0, len(iterations)*len(timeSteps))
	for _, it := range iterations {
		for _, dt := range timeSteps {
			sets = append(sets, paramSet{iterations: it, timeStep: dt})
		}
	}
	return sets
}

func sweep(base fluid.Config, sets []paramSet, steps, workers int) []sweepResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

func runScenario(base fluid.Config, params paramSet, steps int) sweepResult {
	cfg := base
	cfg.Params.Iterations = params.iterations
	cfg.Params.TimeStep = params.timeStep

	residual := make([]float64, 0, steps)
	res, err := fluid.RunScenario(cfg, steps, func(s fluid.Stats) {
		residual = append(residual, s.MaxDivergence)
	})
	return sweepResult{params: params, result: res, residual: residual, err: err}
}

// rank orders results by residual divergence, breaking ties on dye drift.
// Unstable runs (NaN or Inf) sink to the bottom.
func rank(all []sweepResult) {
	key := func(r sweepResult) float64 {
		v := r.result.FinalDivergence
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.Inf(1)
		}
		return v
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := key(all[i]), key(all[j])
		if a != b {
			return a < b
		}
		return math.Abs(all[i].result.DyeDrift()) < math.Abs(all[j].result.DyeDrift())
	})
}
