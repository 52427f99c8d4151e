// Command stargen prints a generated universe, galaxy or system as JSON.
//
//	stargen -seed default -x 3 -y -1
//	stargen -presets presets.yaml -preset milky-way -what galaxy
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"cosmos-server/internal/generation"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/config"
	"cosmos-server/internal/shared/logger"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/system"

	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "stargen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stargen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	seed := fs.String("seed", "", `seed; empty or "random" picks one`)
	preset := fs.String("preset", "", "preset name to start from")
	presetsPath := fs.String("presets", "", "YAML or TOML presets file")
	x := fs.Int64("x", 0, "hex x coordinate")
	y := fs.Int64("y", 0, "hex y coordinate")
	z := fs.Int64("z", 0, "hex z coordinate")
	what := fs.String("what", "system", "universe, galaxy, system or fixture")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	presets := settings.BuiltinPresets()
	if *presetsPath != "" {
		loaded, err := settings.LoadPresets(*presetsPath)
		if err != nil {
			return err
		}
		presets = loaded
	}

	gs := settings.Default()
	if *preset != "" {
		p, err := presets.Get(*preset)
		if err != nil {
			return err
		}
		gs = p
	}
	if *seed != "" {
		gs.Seed = *seed
	}

	log := logger.New(stderr, config.LoggingConfig{Level: *logLevel})
	svc, err := generation.NewService(
		tracenoop.NewTracerProvider().Tracer("stargen"),
		metricnoop.NewMeterProvider().Meter("stargen"),
		log,
	)
	if err != nil {
		return err
	}

	var out any
	switch *what {
	case "universe":
		out, err = svc.GenerateUniverse(ctx, gs)
	case "galaxy":
		out, err = svc.GenerateGalaxy(ctx, gs)
	case "system":
		out, err = svc.GenerateSystem(ctx, gs, spatial.NewCoordinates(*x, *y, *z))
	case "fixture":
		out = system.Fixture()
	default:
		return fmt.Errorf("unknown -what %q", *what)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
