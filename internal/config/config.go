package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the full game configuration. Zero sections are filled from Default.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Devil   DevilConfig   `yaml:"devil"`
	Physics PhysicsConfig `yaml:"physics"`
	Loop    LoopConfig    `yaml:"loop"`
	Log     LogConfig     `yaml:"log"`
	Stats   StatsConfig   `yaml:"stats"`
}

// WorldConfig controls terrain generation
type WorldConfig struct {
	Seed   int64 `yaml:"seed"`
	SizeX  int   `yaml:"size_x"`
	SizeY  int   `yaml:"size_y"`
	SizeZ  int   `yaml:"size_z"`
	Height int   `yaml:"base_height"`
}

// PlayerConfig contains player tuning values
type PlayerConfig struct {
	MaxHealth      int           `yaml:"max_health"`
	WalkSpeed      float32       `yaml:"walk_speed"`
	JumpSpeed      float32       `yaml:"jump_speed"`
	AttackDamage   int           `yaml:"attack_damage"`
	AttackReach    float32       `yaml:"attack_reach"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	MouseSens      float64       `yaml:"mouse_sensitivity"`
}

// DevilConfig contains the hostile entity tuning values
type DevilConfig struct {
	MaxHealth      int           `yaml:"max_health"`
	Damage         int           `yaml:"damage"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	AttackRange    float32       `yaml:"attack_range"`
	Speed          float32       `yaml:"speed"`
	SpawnArea      float32       `yaml:"spawn_area"`
	SpawnHeight    float32       `yaml:"spawn_height"`
	RespawnDelay   time.Duration `yaml:"respawn_delay"`
}

// PhysicsConfig controls the fixed-step integrator
type PhysicsConfig struct {
	Gravity        float32 `yaml:"gravity"`
	SimulationRate int     `yaml:"simulation_rate"`
}

// LoopConfig controls frame pacing
type LoopConfig struct {
	FPSLimit        int           `yaml:"fps_limit"`
	HeadlessStep    time.Duration `yaml:"headless_step"`
	SlowFrameWarn   time.Duration `yaml:"slow_frame_warn"`
	DefeatBannerFor time.Duration `yaml:"defeat_banner_for"`
}

// LogConfig selects the logger level and encoding
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StatsConfig controls the on-disk tallies
type StatsConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Seed:   1337,
			SizeX:  64,
			SizeY:  32,
			SizeZ:  64,
			Height: 8,
		},
		Player: PlayerConfig{
			MaxHealth:      100,
			WalkSpeed:      5,
			JumpSpeed:      10,
			AttackDamage:   10,
			AttackReach:    3,
			AttackCooldown: 500 * time.Millisecond,
			MouseSens:      0.1,
		},
		Devil: DevilConfig{
			MaxHealth:      50,
			Damage:         10,
			AttackCooldown: 2 * time.Second,
			AttackRange:    2,
			Speed:          2,
			SpawnArea:      64,
			SpawnHeight:    2,
			RespawnDelay:   5 * time.Second,
		},
		Physics: PhysicsConfig{
			Gravity:        32,
			SimulationRate: 200,
		},
		Loop: LoopConfig{
			FPSLimit:        120,
			HeadlessStep:    time.Second / 60,
			SlowFrameWarn:   16 * time.Millisecond,
			DefeatBannerFor: 3 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Stats: StatsConfig{
			Enabled: true,
			AppName: "voxel-devil",
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values the game cannot run without.
func (c Config) Validate() error {
	switch {
	case c.World.SizeX <= 0 || c.World.SizeY <= 0 || c.World.SizeZ <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Devil.MaxHealth <= 0:
		return fmt.Errorf("%w: devil max_health must be positive", ErrInvalid)
	case c.Devil.Damage < 0:
		return fmt.Errorf("%w: devil damage must not be negative", ErrInvalid)
	case c.Devil.Speed < 0:
		return fmt.Errorf("%w: devil speed must not be negative", ErrInvalid)
	case c.Devil.AttackRange < 0:
		return fmt.Errorf("%w: devil attack_range must not be negative", ErrInvalid)
	case c.Devil.SpawnHeight < 0:
		return fmt.Errorf("%w: devil spawn_height must not be negative", ErrInvalid)
	case c.Devil.AttackCooldown < 0 || c.Devil.RespawnDelay < 0:
		return fmt.Errorf("%w: devil durations must not be negative", ErrInvalid)
	case c.Devil.SpawnArea <= 0:
		return fmt.Errorf("%w: devil spawn_area must be positive", ErrInvalid)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player max_health must be positive", ErrInvalid)
	case c.Physics.SimulationRate <= 0:
		return fmt.Errorf("%w: physics simulation_rate must be positive", ErrInvalid)
	case c.Loop.HeadlessStep <= 0:
		return fmt.Errorf("%w: loop headless_step must be positive", ErrInvalid)
	}
	return nil
}

// Settings holds the active configuration
type Settings struct {
	mu  sync.RWMutex
	cfg Config
}

var globalSettings = &Settings{cfg: Default()}

// Get returns a copy of the active configuration
func Get() Config {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.cfg
}

// Set installs cfg as the active configuration
func Set(cfg Config) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.cfg = cfg
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.cfg.Loop.FPSLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalSettings.cfg.Loop.FPSLimit = limit
}
