// Package generation runs the generation pipeline: universe, neighborhood,
// galaxy, division, hex and system, each stage strictly after the previous
// one and all of them drawing from a single stream seeded once per call.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/neighborhood"
	"cosmos-server/internal/random"
	"cosmos-server/internal/sector"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/system"
	"cosmos-server/internal/universe"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	StageUniverse     = "universe"
	StageNeighborhood = "neighborhood"
	StageGalaxy       = "galaxy"
	StageDivision     = "division"
	StageHex          = "hex"
	StageSystem       = "system"
)

const (
	// Requests always explore the first galaxy of the neighborhood, through
	// its first sub-sector level, and the first system of a hex.
	galaxyIndex   = 0
	divisionLevel = 1
	systemIndex   = 0
)

type Service struct {
	tracer trace.Tracer
	runs   metric.Int64Counter
	logger *slog.Logger
}

func NewService(tracer trace.Tracer, meter metric.Meter, logger *slog.Logger) (*Service, error) {
	logger.Debug("Initializing generation service")

	runs, err := meter.Int64Counter("cosmos.generation.runs",
		metric.WithDescription("Generation runs by artifact and outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation counter: %w", err)
	}

	return &Service{
		tracer: tracer,
		runs:   runs,
		logger: logger,
	}, nil
}

// run is the state of one call. Nothing in it outlives the call.
type run struct {
	settings settings.GenerationSettings
	stream   *random.Stream
}

func (s *Service) newRun(gs settings.GenerationSettings) *run {
	gs = gs.ResolveSeed()
	return &run{settings: gs, stream: random.NewStream(gs.Seed)}
}

func (s *Service) GenerateUniverse(ctx context.Context, gs settings.GenerationSettings) (*universe.Universe, error) {
	r := s.newRun(gs)
	logger := s.logger.With("component", "generation_service", "operation", "generate_universe", "seed", r.settings.Seed)
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "generate_universe", trace.WithAttributes(attribute.String("seed", r.settings.Seed)))
	defer span.End()

	u, err := s.universe(ctx, r)
	s.record(ctx, span, StageUniverse, err)
	if err != nil {
		return nil, err
	}

	logger.Info("Universe generated", "age", u.Age, "era", u.Era, "duration", time.Since(start))
	return u, nil
}

func (s *Service) GenerateGalaxy(ctx context.Context, gs settings.GenerationSettings) (*galaxy.Galaxy, error) {
	r := s.newRun(gs)
	logger := s.logger.With("component", "generation_service", "operation", "generate_galaxy", "seed", r.settings.Seed)
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "generate_galaxy", trace.WithAttributes(attribute.String("seed", r.settings.Seed)))
	defer span.End()

	g, err := s.galaxy(ctx, r)
	s.record(ctx, span, StageGalaxy, err)
	if err != nil {
		return nil, err
	}

	logger.Info("Galaxy generated", "name", g.Name, "shape", g.Shape, "duration", time.Since(start))
	return g, nil
}

// GenerateSystem runs every stage down to the system at coord.
func (s *Service) GenerateSystem(ctx context.Context, gs settings.GenerationSettings, coord spatial.SpaceCoordinates) (*system.StarSystem, error) {
	r := s.newRun(gs)
	logger := s.logger.With("component", "generation_service", "operation", "generate_system", "seed", r.settings.Seed, "coordinates", coord.String())
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "generate_system", trace.WithAttributes(
		attribute.String("seed", r.settings.Seed),
		attribute.String("coordinates", coord.String()),
	))
	defer span.End()

	sys, err := s.system(ctx, r, coord)
	s.record(ctx, span, StageSystem, err)
	if err != nil {
		return nil, err
	}

	logger.Info("System generated", "name", sys.Name, "stars", len(sys.Stars()), "objects", len(sys.AllObjects), "duration", time.Since(start))
	return sys, nil
}

func (s *Service) universe(ctx context.Context, r *run) (*universe.Universe, error) {
	var u *universe.Universe
	err := s.stage(ctx, StageUniverse, func(context.Context) error {
		var err error
		u, err = universe.Generate(r.settings, r.stream)
		return err
	})
	return u, err
}

func (s *Service) galaxy(ctx context.Context, r *run) (*galaxy.Galaxy, error) {
	u, err := s.universe(ctx, r)
	if err != nil {
		return nil, err
	}

	var n *neighborhood.GalacticNeighborhood
	err = s.stage(ctx, StageNeighborhood, func(context.Context) error {
		n, err = neighborhood.Generate(u, r.settings, r.stream)
		return err
	})
	if err != nil {
		return nil, err
	}

	var g *galaxy.Galaxy
	err = s.stage(ctx, StageGalaxy, func(context.Context) error {
		g, err = galaxy.Generate(n, galaxyIndex, r.settings, r.stream)
		return err
	}, attribute.Int("galaxy.index", galaxyIndex))
	return g, err
}

func (s *Service) system(ctx context.Context, r *run, coord spatial.SpaceCoordinates) (*system.StarSystem, error) {
	g, err := s.galaxy(ctx, r)
	if err != nil {
		return nil, err
	}

	coordAttrs := []attribute.KeyValue{
		attribute.Int64("x", coord.X),
		attribute.Int64("y", coord.Y),
		attribute.Int64("z", coord.Z),
	}

	var subSector sector.Division
	err = s.stage(ctx, StageDivision, func(context.Context) error {
		subSector, err = g.DivisionAtLevel(coord, divisionLevel)
		return err
	}, append(coordAttrs, attribute.Int("level", divisionLevel))...)
	if err != nil {
		return nil, err
	}

	var hex sector.Hex
	err = s.stage(ctx, StageHex, func(context.Context) error {
		hex, err = g.Hex(coord)
		return err
	}, coordAttrs...)
	if err != nil {
		return nil, err
	}

	var sys *system.StarSystem
	err = s.stage(ctx, StageSystem, func(context.Context) error {
		sys, err = system.Generate(systemIndex, coord, hex, subSector, g, r.settings)
		return err
	}, coordAttrs...)
	return sys, err
}

// stage wraps one pipeline step in its own span.
func (s *Service) stage(ctx context.Context, name string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *Service) record(ctx context.Context, span trace.Span, artifact string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.SetStatus(codes.Error, err.Error())
	}
	s.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("artifact", artifact),
		attribute.String("outcome", outcome),
	))
}
