package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "WILDGRID_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "config/worldsim.yaml"

// Navigation modes.
const (
	NavAnchors  = "anchors"
	NavFreeRoam = "free_roam"
)

// World holds all configuration for the world simulation.
type World struct {
	LogLevel string `yaml:"log_level"`

	// Stage size in tiles
	StageWidth  int `yaml:"stage_width"`
	StageHeight int `yaml:"stage_height"`

	// Generation
	Seed          int64       `yaml:"seed"`
	StructureSalt uint64      `yaml:"structure_salt"` // 0 = random per run
	Noise         NoiseConfig `yaml:"noise"`
	MaxStructures int         `yaml:"max_structures"`

	// Population
	PersonCount int     `yaml:"person_count"`
	PlantLower  int     `yaml:"plant_lower"`
	PlantUpper  int     `yaml:"plant_upper"` // exclusive
	PlantRate   float32 `yaml:"plant_rate"`  // fruit progress per second

	// Agents
	BaseSpeed             float32 `yaml:"base_speed"`   // world units per second
	PlayerSpeed           float32 `yaml:"player_speed"` // world units per second
	HungerCapacity        float32 `yaml:"hunger_capacity"`
	HungerRate            float32 `yaml:"hunger_rate"` // per second
	OffscreenHungerRelief float32 `yaml:"offscreen_hunger_relief"`
	NavigationMode        string  `yaml:"navigation_mode"`

	// Timing
	TickRate        time.Duration `yaml:"tick_rate"`         // idle/goal timer period
	FrameInterval   time.Duration `yaml:"frame_interval"`    // simulation step
	UnknownPathWait time.Duration `yaml:"unknown_path_wait"` // offscreen catch-up without a path

	// Memory
	MaxResidentAreas int `yaml:"max_resident_areas"` // 0 = unbounded

	Database DatabaseConfig `yaml:"database"`
	Observer ObserverConfig `yaml:"observer"`
}

// NoiseConfig holds terrain sampling parameters.
type NoiseConfig struct {
	TerrainZoom   float64 `yaml:"terrain_zoom"`
	AdjustZoom    float64 `yaml:"adjust_zoom"`
	AdjustWeight  float64 `yaml:"adjust_weight"`
	BiomeZoom     float64 `yaml:"biome_zoom"`
	StructureZoom float64 `yaml:"structure_zoom"`
	Biomes        bool    `yaml:"biomes"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// ObserverConfig controls the websocket observer endpoint.
type ObserverConfig struct {
	Enabled      bool   `yaml:"enabled"`
	BindAddress  string `yaml:"bind_address"`
	Port         int    `yaml:"port"`
	SendQueue    int    `yaml:"send_queue"`    // per-client buffered snapshots
	SnapshotRate int    `yaml:"snapshot_rate"` // frames between snapshots
}

// Addr returns host:port for the HTTP listener.
func (o ObserverConfig) Addr() string {
	return fmt.Sprintf("%s:%d", o.BindAddress, o.Port)
}

// DefaultWorld returns World config with sensible defaults.
func DefaultWorld() World {
	return World{
		LogLevel:    "info",
		StageWidth:  40,
		StageHeight: 30,
		Noise: NoiseConfig{
			TerrainZoom:   24,
			AdjustZoom:    6,
			AdjustWeight:  0.25,
			BiomeZoom:     4,
			StructureZoom: 3,
			Biomes:        true,
		},
		MaxStructures:         4,
		PersonCount:           15,
		PlantLower:            5,
		PlantUpper:            15,
		PlantRate:             0.05,
		BaseSpeed:             48,
		PlayerSpeed:           100,
		HungerCapacity:        100,
		HungerRate:            0.25,
		OffscreenHungerRelief: 0.01,
		NavigationMode:        NavAnchors,
		TickRate:              500 * time.Millisecond,
		FrameInterval:         time.Second / 30,
		UnknownPathWait:       20 * time.Second,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "wildgrid",
			Password: "wildgrid",
			DBName:   "wildgrid",
			SSLMode:  "disable",
		},
		Observer: ObserverConfig{
			Enabled:      true,
			BindAddress:  "127.0.0.1",
			Port:         8080,
			SendQueue:    16,
			SnapshotRate: 3,
		},
	}
}

// ErrInvalid reports a config value the simulation cannot run with.
var ErrInvalid = errors.New("invalid config")

// Validate checks dimension sanity only.
func (w World) Validate() error {
	if w.StageWidth <= 0 || w.StageHeight <= 0 {
		return fmt.Errorf("stage %dx%d: %w", w.StageWidth, w.StageHeight, ErrInvalid)
	}
	if w.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval %s: %w", w.FrameInterval, ErrInvalid)
	}
	switch w.NavigationMode {
	case NavAnchors, NavFreeRoam:
	default:
		return fmt.Errorf("navigation_mode %q: %w", w.NavigationMode, ErrInvalid)
	}
	return nil
}

// PixelWidth returns the stage width in world units.
func (w World) PixelWidth(tileSize int) float32 { return float32(w.StageWidth * tileSize) }

// PixelHeight returns the stage height in world units.
func (w World) PixelHeight(tileSize int) float32 { return float32(w.StageHeight * tileSize) }

// Path returns the config file path, honouring EnvPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// LoadWorld loads world config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadWorld(path string) (World, error) {
	cfg := DefaultWorld()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
