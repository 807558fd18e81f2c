package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"voxel-devil/internal/config"
	"voxel-devil/internal/entity"
	"voxel-devil/internal/game"
	"voxel-devil/internal/graphics"
	"voxel-devil/internal/hud"
	"voxel-devil/internal/input"
	"voxel-devil/internal/logging"
	"voxel-devil/internal/stats"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	headless := flag.Bool("headless", false, "Run without a window, driven by a fixed-step clock")
	ticks := flag.Int("ticks", 3600, "Ticks to simulate in headless mode (0 = until interrupted)")
	seed := flag.Int64("seed", 0, "World and spawn seed (0 keeps the configured seed)")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	fps := flag.Int("fps", -1, "Frame cap override (0 = uncapped, -1 keeps the configured value)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	config.Set(cfg)
	if *fps >= 0 {
		config.SetFPSLimit(*fps)
	}
	cfg = config.Get()

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	closer.Bind(func() {
		cancel()
		<-done
		_ = logger.Sync()
	})

	err = run(ctx, cfg, *headless, *ticks, logger)
	close(done)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("voxel-devil stopped", zap.Error(err))
		closer.Exit(1)
	}
	closer.Close()
}

func run(ctx context.Context, cfg config.Config, headless bool, ticks int, logger *zap.Logger) error {
	var store stats.Store
	if cfg.Stats.Enabled {
		m, err := stats.Open(cfg.Stats.AppName)
		if err != nil {
			logger.Warn("stats disabled", zap.Error(err))
		} else {
			store = m
		}
	}

	opts := game.Options{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(cfg.World.Seed)),
		Logger: logger,
		Store:  store,
	}

	if headless {
		clock := entity.NewManualClock(time.Now())
		opts.Clock = clock
		opts.Display = hud.NewLogDisplay(logger)
		s, err := game.NewSession(opts)
		if err != nil {
			return err
		}
		defer closeSession(s, logger)

		h := &game.Headless{
			Session:   s,
			Clock:     clock,
			Step:      cfg.Loop.HeadlessStep,
			Autopilot: true,
			SlowFrame: cfg.Loop.SlowFrameWarn,
			Logger:    logger,
		}
		_, err = h.Run(ctx, ticks)
		return err
	}

	return runWindowed(ctx, cfg, opts, logger)
}

func runWindowed(ctx context.Context, cfg config.Config, opts game.Options, logger *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow("voxel-devil", graphics.WinWidth, graphics.WinHeight)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	r, err := graphics.NewRenderer(graphics.WinWidth, graphics.WinHeight)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer r.Dispose()

	s, err := game.NewSession(opts)
	if err != nil {
		return err
	}
	defer closeSession(s, logger)

	app := game.NewApp(window, input.NewInputManager(), s, r, cfg.Loop.SlowFrameWarn, logger)
	game.SetupInputHandlers(app)
	app.Run(ctx)
	return nil
}

func closeSession(s *game.Session, logger *zap.Logger) {
	if err := s.Close(); err != nil {
		logger.Warn("session close", zap.Error(err))
	}
}
