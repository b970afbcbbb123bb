package fluid

import (
	"errors"
	"math"
	"slices"
	"testing"

	"dyeflow/internal/core"
)

func smallConfig(size int) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	return cfg
}

func mustFluid(t *testing.T, cfg Config) *Fluid {
	t.Helper()
	f, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return f
}

func TestNewRejectsSmallGrid(t *testing.T) {
	_, err := New(9)
	if !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
	if _, err := New(MinSize); err != nil {
		t.Fatalf("size %d must be accepted: %v", MinSize, err)
	}
}

func TestValidateRejectsBadConstants(t *testing.T) {
	mutations := map[string]func(*Config){
		"density":    func(c *Config) { c.Params.Density = 0 },
		"viscosity":  func(c *Config) { c.Params.Viscosity = -1 },
		"diffusion":  func(c *Config) { c.Params.DiffusionRate = -1 },
		"time step":  func(c *Config) { c.Params.TimeStep = 0 },
		"iterations": func(c *Config) { c.Params.Iterations = 0 },
		"puffs":      func(c *Config) { c.Puffs = -2 },
	}
	for name, mutate := range mutations {
		cfg := smallConfig(12)
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected %s to be rejected", name)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestInjectionAccumulates(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	for i := 0; i < 2; i++ {
		if err := f.AddU(1.5, 3, 4); err != nil {
			t.Fatal(err)
		}
		if err := f.AddV(-2, 3, 4); err != nil {
			t.Fatal(err)
		}
		if err := f.AddDye(10, 3, 4); err != nil {
			t.Fatal(err)
		}
	}
	if got := f.U().Values()[4+3*10]; got != 3 {
		t.Fatalf("u = %f, want 3", got)
	}
	if got := f.V().At(3, 4); got != -4 {
		t.Fatalf("v = %f, want -4", got)
	}
	if got := f.Dye().At(3, 4); got != 20 {
		t.Fatalf("dye = %f, want 20", got)
	}
	if got := f.Dye().Sum(); got != 20 {
		t.Fatalf("only one cell may change, total dye %f", got)
	}
}

func TestInjectionOutOfRange(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	cases := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}}
	for _, c := range cases {
		err := f.AddDye(5, c[0], c[1])
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("AddDye%v: expected OutOfRangeError, got %v", c, err)
		}
		if oor.Row != c[0] || oor.Col != c[1] || oor.Size != 10 || oor.Field != "dye" {
			t.Fatalf("unexpected error payload %+v", oor)
		}
	}
	if err := f.AddU(1, 0, 10); err == nil {
		t.Fatal("AddU must reject out-of-range columns")
	}
	if err := f.AddV(1, 10, 0); err == nil {
		t.Fatal("AddV must reject out-of-range rows")
	}
	if f.Dye().Sum() != 0 || f.U().Sum() != 0 || f.V().Sum() != 0 {
		t.Fatal("rejected injections must not mutate state")
	}
}

func TestClearDyeKeepsVelocity(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	_ = f.AddDye(100, 4, 4)
	_ = f.AddU(3, 4, 4)
	_ = f.AddV(2, 4, 4)
	f.ClearDye()
	if f.Dye().Sum() != 0 {
		t.Fatal("ClearDye must zero the dye")
	}
	if f.U().At(4, 4) != 3 || f.V().At(4, 4) != 2 {
		t.Fatal("ClearDye must not touch velocities")
	}
	for _, c := range f.Cells() {
		if c != 0 {
			t.Fatal("display buffer must be rebuilt after ClearDye")
		}
	}
}

func neighbourhoodDivergence(f *Fluid, row, col int) float64 {
	d := Divergence(f.U(), f.V())
	peak := 0.0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			peak = math.Max(peak, math.Abs(d.At(row+dr, col+dc)))
		}
	}
	return peak
}

func TestStepDampsInjectedDivergence(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	if err := f.AddU(15, 5, 5); err != nil {
		t.Fatal(err)
	}
	// A single-cell impulse has zero central difference at its own cell, so
	// measure the 3x3 neighbourhood it feeds.
	before := neighbourhoodDivergence(f, 5, 5)
	if before == 0 {
		t.Fatal("impulse should create divergence around the cell")
	}

	f.Step()

	after := neighbourhoodDivergence(f, 5, 5)
	if after >= before {
		t.Fatalf("divergence near (5,5) grew from %f to %f", before, after)
	}
	if f.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", f.Tick())
	}
}

func TestStepLeavesFieldsOnTheirBoundaries(t *testing.T) {
	f := mustFluid(t, smallConfig(16))
	_ = f.Shoot(JetRight)
	_ = f.Shoot(JetUp)
	for i := 0; i < 3; i++ {
		f.Step()
	}
	checks := []struct {
		name  string
		field *core.Field
		kind  Boundary
	}{
		{"u", f.U(), BoundaryHorizontal},
		{"v", f.V(), BoundaryVertical},
		{"dye", f.Dye(), BoundaryCopy},
	}
	for _, c := range checks {
		before := append([]float64(nil), c.field.Values()...)
		probe := c.field.Clone()
		enforceBoundary(c.kind, probe)
		if !slices.Equal(before, probe.Values()) {
			t.Fatalf("%s border does not satisfy the %s boundary after a tick", c.name, c.kind)
		}
	}
}

func TestStepKeepsDyeNonNegative(t *testing.T) {
	f := mustFluid(t, smallConfig(20))
	_ = f.Shoot(JetUp)
	_ = f.Shoot(JetLeft)
	for i := 0; i < 10; i++ {
		f.Step()
	}
	for i, d := range f.Dye().Values() {
		if d < 0 || math.IsNaN(d) {
			t.Fatalf("dye cell %d = %f", i, d)
		}
	}
}

func TestStepWithoutFlowOnlyDiffusesDye(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	_ = f.AddDye(1500, 7, 5)
	f.Step()
	if f.U().Sum() != 0 || f.V().Sum() != 0 {
		t.Fatal("a still fluid must stay still")
	}
	if got := interiorSum(f.Dye()); math.Abs(got-1500) > 1e-6 {
		t.Fatalf("interior dye %.9f, want 1500", got)
	}
}

func TestShootPlacesJets(t *testing.T) {
	f := mustFluid(t, smallConfig(20))
	cases := []struct {
		dir      Jet
		row, col int
		du, dv   float64
	}{
		{JetUp, 17, 10, 0, -JetSpeed},
		{JetDown, 3, 10, 0, JetSpeed},
		{JetRight, 10, 3, JetSpeed, 0},
		{JetLeft, 10, 17, -JetSpeed, 0},
	}
	for _, c := range cases {
		f.Reset(0)
		if err := f.Shoot(c.dir); err != nil {
			t.Fatal(err)
		}
		if got := f.Dye().At(c.row, c.col); got != JetDye {
			t.Fatalf("jet %d dye at (%d,%d) = %f", c.dir, c.row, c.col, got)
		}
		if f.U().At(c.row, c.col) != c.du || f.V().At(c.row, c.col) != c.dv {
			t.Fatalf("jet %d velocity = (%f,%f), want (%f,%f)", c.dir, f.U().At(c.row, c.col), f.V().At(c.row, c.col), c.du, c.dv)
		}
	}
	if err := f.Shoot(Jet(9)); err == nil {
		t.Fatal("unknown jet must be rejected")
	}
}

func TestStirIgnoresBorderDrags(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	if err := f.Stir(4, 5, 1, -1); err != nil {
		t.Fatal(err)
	}
	if f.Dye().At(4, 5) != StirDye || f.U().At(4, 5) != 1 || f.V().At(4, 5) != -1 {
		t.Fatal("stir must inject dye and drag velocity")
	}
	var oor *OutOfRangeError
	if err := f.Stir(4, 9, 1, 0); !errors.As(err, &oor) {
		t.Fatalf("expected drag on the last column to be rejected, got %v", err)
	}
}

func TestCellsClampDye(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	_ = f.AddDye(1000, 2, 2)
	_ = f.AddDye(-50, 3, 3)
	_ = f.AddDye(42.7, 4, 4)
	cells := f.Cells()
	if cells[2+2*10] != 255 {
		t.Fatalf("expected saturation at 255, got %d", cells[2+2*10])
	}
	if cells[3+3*10] != 0 {
		t.Fatalf("expected negative dye to clamp to 0, got %d", cells[3+3*10])
	}
	if cells[4+4*10] != 42 {
		t.Fatalf("expected 42, got %d", cells[4+4*10])
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := smallConfig(24)
	cfg.Puffs = 5
	f := mustFluid(t, cfg)

	f.Reset(0)
	dye := append([]float64(nil), f.Dye().Values()...)
	u := append([]float64(nil), f.U().Values()...)
	if f.Dye().Sum() == 0 {
		t.Fatal("puffs should seed dye")
	}

	f.Step()
	f.Reset(0)
	if !slices.Equal(dye, f.Dye().Values()) || !slices.Equal(u, f.U().Values()) {
		t.Fatal("Reset with config seed is not deterministic")
	}
	if f.Tick() != 0 {
		t.Fatal("Reset must rewind the tick counter")
	}

	f.Reset(777)
	if slices.Equal(dye, f.Dye().Values()) {
		t.Fatal("different seeds should place different puffs")
	}
}

func TestResetWithoutPuffsClearsEverything(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	_ = f.Shoot(JetDown)
	f.Reset(5)
	if f.Dye().Sum() != 0 || f.U().Sum() != 0 || f.V().Sum() != 0 {
		t.Fatal("Reset must clear every field")
	}
}

func TestVelocityAt(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	_ = f.AddU(2, 3, 6)
	_ = f.AddV(-1, 3, 6)
	u, v := f.VelocityAt(6.5, 3.2)
	if u != 2 || v != -1 {
		t.Fatalf("VelocityAt = (%f,%f), want (2,-1)", u, v)
	}
	if u, v := f.VelocityAt(-0.5, 3); u != 0 || v != 0 {
		t.Fatal("points left of the grid must report zero")
	}
	if u, v := f.VelocityAt(3, 10); u != 0 || v != 0 {
		t.Fatal("points below the grid must report zero")
	}
}

func TestDivergenceMaskNormalised(t *testing.T) {
	f := mustFluid(t, smallConfig(10))
	for _, m := range f.DivergenceMask() {
		if m != 0 {
			t.Fatal("still fluid must have an empty mask")
		}
	}
	_ = f.AddU(15, 5, 5)
	mask := f.DivergenceMask()
	peak := float32(0)
	for _, m := range mask {
		if m < 0 || m > 1 {
			t.Fatalf("mask value %f outside [0,1]", m)
		}
		if m > peak {
			peak = m
		}
	}
	if peak != 1 {
		t.Fatalf("expected peak 1, got %f", peak)
	}
}

func TestRegistryFallsBackToDefaults(t *testing.T) {
	factory, ok := core.Sims()["fluid"]
	if !ok {
		t.Fatal("fluid sim not registered")
	}
	sim := factory(map[string]string{"size": "4"})
	if got := sim.Size(); got.W != 150 || got.H != 150 {
		t.Fatalf("expected default 150x150 after invalid size, got %+v", got)
	}
	sim = factory(map[string]string{"size": "32", "iterations": "8"})
	if got := sim.Size(); got.W != 32 {
		t.Fatalf("expected size 32, got %+v", got)
	}
	fl, ok := sim.(*Fluid)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if fl.Config().Params.Iterations != 8 {
		t.Fatalf("expected 8 iterations, got %d", fl.Config().Params.Iterations)
	}
}

func TestParametersSnapshot(t *testing.T) {
	f := mustFluid(t, smallConfig(12))
	_ = f.AddDye(10, 5, 5)
	snap := f.Parameters()
	p, ok := snap.Find("iterations")
	if !ok || p.Value != "30" || p.Type != core.ParamTypeInt {
		t.Fatalf("unexpected iterations parameter %+v", p)
	}
	p, ok = snap.Find("dye_total")
	if !ok || p.Value != "10" {
		t.Fatalf("unexpected dye_total parameter %+v", p)
	}
	if _, ok := snap.Find("dt"); !ok {
		t.Fatal("time step missing from snapshot")
	}
}

func BenchmarkStep(b *testing.B) {
	f, err := New(150)
	if err != nil {
		b.Fatal(err)
	}
	_ = f.Shoot(JetUp)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step()
	}
}
