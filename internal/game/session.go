package game

import (
	"fmt"
	"math/rand"

	"voxel-devil/internal/config"
	"voxel-devil/internal/entity"
	"voxel-devil/internal/graphics"
	"voxel-devil/internal/hud"
	"voxel-devil/internal/logging"
	"voxel-devil/internal/meshing"
	"voxel-devil/internal/physics"
	"voxel-devil/internal/player"
	"voxel-devil/internal/profiling"
	"voxel-devil/internal/scene"
	"voxel-devil/internal/stats"
	"voxel-devil/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// voidDepth is how far below the grid a player may fall before dying
const voidDepth = -16

// Options configures NewSession. Only Config is required.
type Options struct {
	Config config.Config
	Clock  entity.Clock
	Rand   *rand.Rand
	Logger *zap.Logger

	// Generator overrides the seeded terrain generator
	Generator world.TerrainGenerator
	// Display receives devil health updates besides the overlay
	Display hud.Display
	// Store persists stats; nil keeps them in memory
	Store stats.Store
}

// Session owns one running game: the world, the player, the devil slot and
// the HUD model. Update advances it by one tick in a fixed order.
type Session struct {
	World   *world.World
	Physics *physics.Physics
	Player  *player.Player
	Scene   *scene.Graph
	Spawner *entity.Spawner
	Overlay *hud.Overlay
	Stats   *stats.Tracker
	Sun     graphics.Sun

	cfg       config.Config
	clock     *entity.PausableClock
	healthBar *hud.DevilHealthBar
	mesh      meshing.Cache
	log       *zap.Logger
	ticks     uint64
}

func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.OrNop(opts.Logger)
	clock := entity.NewPausableClock(opts.Clock)
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.World.Seed))
	}

	gen := opts.Generator
	if gen == nil {
		gen = world.NewGenerator(cfg.World.Seed, cfg.World.Height)
	}
	w := world.New(cfg.World.SizeX, cfg.World.SizeY, cfg.World.SizeZ)
	w.Generate(gen)

	s := &Session{
		World:   w,
		Physics: physics.New(cfg.Physics.Gravity, cfg.Physics.SimulationRate),
		Scene:   scene.NewGraph(),
		Overlay: hud.NewOverlay(cfg.Loop.DefeatBannerFor),
		Stats:   stats.NewTracker(opts.Store, log),
		cfg:     cfg,
		clock:   clock,
		log:     log.Named("session"),
	}

	s.Player = player.New(cfg.Player, s.spawnPoint(), log)
	s.Player.AddHooks(player.Hooks{
		HealthChanged: s.Overlay.SetPlayerHealth,
		Died:          func(int) { s.Stats.PlayerDied() },
	})

	var display hud.Display = s.Overlay
	if opts.Display != nil {
		display = hud.Multi{s.Overlay, opts.Display}
	}
	s.healthBar = hud.NewDevilHealthBar(display)

	factory := func() (*entity.Devil, error) {
		return entity.NewDevil(entity.DevilOptions{
			Config:    cfg.Devil,
			Scene:     s.Scene,
			World:     s.World,
			Clock:     clock,
			Rand:      rng,
			Logger:    log,
			Listeners: []entity.Listener{s.healthBar, s.Stats},
		})
	}
	s.Spawner = entity.NewSpawner(factory, cfg.Devil.RespawnDelay, log, s.healthBar, s.Stats)

	s.Sun.Follow(s.View().Eye)
	s.log.Info("session started",
		zap.Int64("seed", cfg.World.Seed),
		zap.Int("size_x", cfg.World.SizeX), zap.Int("size_y", cfg.World.SizeY), zap.Int("size_z", cfg.World.SizeZ))
	return s, nil
}

// spawnPoint is the ground above the centre column
func (s *Session) spawnPoint() mgl32.Vec3 {
	sx, sy, sz := s.World.Size()
	x, z := sx/2, sz/2
	y := float32(sy)
	if top := s.World.SurfaceHeightAt(x, z); top >= 0 {
		y = float32(top) + 0.5
	}
	return mgl32.Vec3{float32(x), y, float32(z)}
}

// Update advances the game by dt seconds: player input, physics, player,
// devil slot and devil, HUD, then camera and sun. While paused only the HUD
// animates and the devil bar is resynced.
func (s *Session) Update(dt float64, in player.Intent) {
	defer profiling.Track("session.Update")()
	s.ticks++
	s.Overlay.Update(dt)
	s.healthBar.Sync(s.Spawner.Current())

	if s.Paused() {
		return
	}

	s.Player.ApplyInput(in)
	func() {
		defer profiling.Track("session.physics")()
		s.Physics.Update(dt, &s.Player.Body, s.World)
	}()
	s.Player.Update(dt, s.World)
	if s.Player.Position().Y() < voidDepth {
		s.log.Info("player fell out of the world")
		s.Player.TakeDamage(s.Player.Health)
	}

	func() {
		defer profiling.Track("devil.Update")()
		d := s.Spawner.Tick(s.clock.Now())
		if d == nil {
			return
		}
		s.Player.Strike(d, s.World)
		d.Update(dt, s.Player)
	}()

	s.healthBar.Sync(s.Spawner.Current())
	s.Sun.Follow(s.View().Eye)
}

// SetPaused freezes or resumes the simulation. The session clock stops with
// it, so cooldowns and a pending respawn do not run out while paused.
func (s *Session) SetPaused(paused bool) {
	s.clock.SetPaused(paused)
}

// Paused reports whether the simulation is frozen and the orbit camera is active
func (s *Session) Paused() bool {
	return s.clock.Paused()
}

// View is the active camera: first person while playing, orbit while paused
func (s *Session) View() graphics.View {
	if s.Paused() {
		return graphics.OrbitView(s.Player.Position())
	}
	return graphics.FirstPersonView(s.Player.EyePosition(), s.Player.LookDir())
}

// Frame collects what the renderer needs for the current state
func (s *Session) Frame() *graphics.Frame {
	pct, visible := s.Overlay.DevilBar()
	banner, _ := s.Overlay.Banner()
	mesh, version := s.mesh.Mesh(s.World)
	return &graphics.Frame{
		View:        s.View(),
		Sun:         s.Sun,
		Mesh:        mesh,
		MeshVersion: version,
		Boxes:       s.Scene.Attached(),
		HUD: graphics.HUDFrame{
			DevilPct:     pct,
			DevilVisible: visible,
			PlayerPct:    s.Overlay.PlayerBar(),
			Banner:       banner,
			Crosshair:    !s.Paused(),
		},
	}
}

// Ticks counts Update calls
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Close removes the devil, persists stats and closes the scene
func (s *Session) Close() error {
	s.Spawner.Close()
	s.Scene.Close()
	if err := s.Stats.Save(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}
