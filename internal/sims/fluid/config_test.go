package fluid

import "testing"

func TestFromMapParsesKnownKeys(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":       "64",
		"seed":       "-3",
		"puffs":      "4",
		"density":    "0.2",
		"viscosity":  "0.001",
		"diffusion":  "0",
		"dt":         "0.05",
		"iterations": "12",
	})
	if cfg.Size != 64 || cfg.Seed != -3 || cfg.Puffs != 4 {
		t.Fatalf("grid keys not parsed: %+v", cfg)
	}
	p := cfg.Params
	if p.Density != 0.2 || p.Viscosity != 0.001 || p.DiffusionRate != 0 || p.TimeStep != 0.05 || p.Iterations != 12 {
		t.Fatalf("solver keys not parsed: %+v", p)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("parsed config should validate: %v", err)
	}
}

func TestFromMapKeepsDefaultsOnGarbage(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":       "big",
		"dt":         "fast",
		"iterations": "",
	})
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map must yield defaults")
	}
}

func TestFromMapLeavesRangeChecksToValidate(t *testing.T) {
	cfg := FromMap(map[string]string{"size": "3"})
	if cfg.Size != 3 {
		t.Fatalf("expected size to be passed through, got %d", cfg.Size)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate to reject size 3")
	}
}
