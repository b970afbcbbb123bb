package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Palette string
	Set     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "fluid", Scale: 4, TPS: 60, Seed: 42, Palette: "gray", Set: KVList{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Palette, "palette", c.Palette, "colour mode: gray, hsb or viridis")
	fs.Var(&c.Set, "set", "simulation option as key=value (repeatable)")
}

// KVList collects repeated key=value flags into a map.
type KVList map[string]string

func (kv *KVList) String() string {
	if kv == nil || *kv == nil {
		return ""
	}
	parts := make([]string, 0, len(*kv))
	for k, v := range *kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (kv *KVList) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	if *kv == nil {
		*kv = KVList{}
	}
	(*kv)[key] = strings.TrimSpace(val)
	return nil
}
