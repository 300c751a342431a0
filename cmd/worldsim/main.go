package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/wildgrid/internal/ai"
	"github.com/udisondev/wildgrid/internal/config"
	"github.com/udisondev/wildgrid/internal/db"
	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/model"
	"github.com/udisondev/wildgrid/internal/observer"
	"github.com/udisondev/wildgrid/internal/sim"
	"github.com/udisondev/wildgrid/internal/spawn"
	"github.com/udisondev/wildgrid/internal/world"
)

// configPoll is how often startup checks the background config load.
const configPoll = 10 * time.Millisecond

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := awaitConfig(ctx, config.LoadAsync(config.Path()))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	salt := cfg.StructureSalt
	if salt == 0 {
		salt = rand.Uint64()
	}
	seed := world.SeedFromInt(cfg.Seed).WithSalt(salt)

	slog.Info("wildgrid starting",
		"log_level", cfg.LogLevel,
		"stage", fmt.Sprintf("%dx%d", cfg.StageWidth, cfg.StageHeight),
		"seed", cfg.Seed,
		"salt", salt,
		"navigation", cfg.NavigationMode)

	opts := world.MapOptions{MaxResident: cfg.MaxResidentAreas}
	if cfg.Database.Enabled {
		repo, closeDB, err := openAreaStore(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB()
		opts.Store = repo
	} else if cfg.MaxResidentAreas > 0 {
		opts.Store = world.NewMemoryStore()
	}

	gen := world.NewGenerator(generatorConfig(cfg), seed)
	worldMap := world.NewWorldMap(ctx, gen, opts)
	slog.Info("world generated", "structures", len(worldMap.Structures), "anchors", len(worldMap.Anchors))

	registry := model.NewRegistry()
	center := geo.TileCoord{X: int32(cfg.StageWidth / 2), Y: int32(cfg.StageHeight / 2)}
	registry.Add(model.NewPlayer(center, worldMap.Location, cfg.PlayerSpeed))

	simCtx := sim.NewContext(ctx, worldMap, registry, &cfg, uint64(cfg.Seed)^salt)

	hub := observer.NewHub(cfg.Observer.SendQueue)
	input := &observer.InputState{}
	if cfg.Observer.Enabled {
		simCtx.Input = input
	}

	sched := sim.NewScheduler(
		&sim.Timer{},
		sim.PlayerControl{},
		spawn.NewSpawner(cfg.PersonCount),
		ai.Catchup{},
		sim.OffscreenTimer{},
		sim.PlantGrowth{},
		ai.HungerDecay{},
		ai.MealGoals{},
		ai.Idle{},
		ai.Rudder{},
		ai.Move{},
		sim.Physical{},
	)
	if cfg.Observer.Enabled {
		sched.Add(observer.NewPublisher(hub, cfg.Observer.SnapshotRate))
	}
	slog.Info("systems registered", "order", sched.Names())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting simulation loop", "interval", cfg.FrameInterval)
		if err := sim.NewLoop(sched, simCtx, cfg.FrameInterval).Run(gctx); err != nil && gctx.Err() == nil {
			return fmt.Errorf("simulation loop: %w", err)
		}
		return nil
	})

	if cfg.Observer.Enabled {
		ln, err := net.Listen("tcp", cfg.Observer.Addr())
		if err != nil {
			return fmt.Errorf("listening on %s: %w", cfg.Observer.Addr(), err)
		}
		g.Go(func() error {
			defer hub.Close()
			return observer.Serve(gctx, ln, observer.NewHandler(hub, input).Routes())
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("wildgrid stopped",
		"frames", simCtx.Frame,
		"areas", worldMap.AreaCount(),
		"persons", registry.CountKind(model.KindPerson),
		"plants", registry.CountKind(model.KindPlant))
	return nil
}

// awaitConfig polls the background loader until it finishes or ctx ends.
func awaitConfig(ctx context.Context, loader *config.AsyncLoader) (config.World, error) {
	ticker := time.NewTicker(configPoll)
	defer ticker.Stop()
	for !loader.Done() {
		select {
		case <-ctx.Done():
			return config.World{}, ctx.Err()
		case <-ticker.C:
		}
	}
	return loader.Wait()
}

// openAreaStore connects to Postgres, applies migrations and scopes area rows
// to a fresh session. The returned func removes the session and closes the pool.
func openAreaStore(ctx context.Context, cfg config.DatabaseConfig) (*db.AreaRepository, func(), error) {
	if err := db.RunMigrations(ctx, cfg.DSN()); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	database, err := db.New(ctx, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	repo := db.NewAreaRepository(database.Pool(), uuid.New())
	slog.Info("area store connected", "session", repo.Session())

	return repo, func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		n, err := repo.DeleteSession(cleanupCtx)
		if err != nil {
			slog.Warn("removing session areas", "session", repo.Session(), "error", err)
		} else {
			slog.Info("session areas removed", "session", repo.Session(), "areas", n)
		}
		database.Close()
	}, nil
}

func generatorConfig(cfg config.World) world.GeneratorConfig {
	g := world.DefaultGeneratorConfig(cfg.StageWidth, cfg.StageHeight)
	n := cfg.Noise
	if n.TerrainZoom > 0 {
		g.TerrainZoom = n.TerrainZoom
	}
	if n.AdjustZoom > 0 {
		g.AdjustZoom = n.AdjustZoom
	}
	if n.BiomeZoom > 0 {
		g.BiomeZoom = n.BiomeZoom
	}
	if n.StructureZoom > 0 {
		g.StructureZoom = n.StructureZoom
	}
	g.AdjustWeight = n.AdjustWeight
	g.Biomes = n.Biomes
	g.MaxStructures = cfg.MaxStructures
	return g
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
