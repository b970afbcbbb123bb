package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"dyeflow/internal/record"
	"dyeflow/internal/render"
	"dyeflow/internal/sims/fluid"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// options parses the repeated key=value overrides into a map; malformed
// entries are reported and skipped.
func (l kvList) options() map[string]string {
	out := map[string]string{}
	for _, kv := range l {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			log.Printf("ignoring override %q: expected key=value", kv)
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return out
}

func main() {
	out := flag.String("out", "fluid.avi", "output MJPEG AVI path")
	steps := flag.Int("steps", 300, "ticks to record")
	scale := flag.Int("scale", 4, "pixel scale multiplier")
	fps := flag.Int("fps", 30, "frames per second of the video")
	paletteName := flag.String("palette", "gray", "colour mode: gray, hsb or viridis")
	var overrides kvList
	flag.Var(&overrides, "set", "simulation option in key=value form (repeatable)")
	flag.Parse()

	palette, err := render.ParsePalette(*paletteName)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := fluid.NewWithConfig(fluid.FromMap(overrides.options()))
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(0)

	size := sim.Size()
	rec, err := record.New(*out, size.W, size.H, *scale, *fps, palette.Colors())
	if err != nil {
		log.Fatal(err)
	}

	result, runErr := fluid.RunScenarioWith(sim, *steps, nil, func(f *fluid.Fluid) error {
		return rec.AddFrame(f.Cells())
	})
	if err := rec.Close(); err != nil {
		log.Fatal(err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}

	fmt.Printf("Recorded %d frames to %s (%dx%d, palette %s)\n", rec.Frames(), *out, size.W*(*scale), size.H*(*scale), palette)
	fmt.Printf("Dye %.1f of %.1f injected (drift %+.3f), residual divergence %.4g, peak %.4g\n",
		result.FinalDye, result.InjectedDye, result.DyeDrift(), result.FinalDivergence, result.PeakDivergence)
}
