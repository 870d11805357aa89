// Package config loads runtime settings from a TOML file, a .env file and RINGBALL_* variables
//
// Precedence, lowest first: parameter defaults, config file, environment
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ringball/parameter"
	"github.com/lixenwraith/ringball/theme"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "RINGBALL_"

// Arena holds geometry overrides
type Arena struct {
	Radius            float64 `toml:"radius"`
	GoalWidth         float64 `toml:"goal_width"`
	GoalHeight        float64 `toml:"goal_height"`
	GoalRotationSpeed float64 `toml:"goal_rotation_speed"`
}

// Config is the resolved runtime configuration
type Config struct {
	FPS        int    `toml:"fps"`
	Seed       uint64 `toml:"seed"`
	ScoresPath string `toml:"scores_path"`
	Theme      string `toml:"theme"`
	Mute       bool   `toml:"mute"`
	Debug      bool   `toml:"debug"`
	Arena      Arena  `toml:"arena"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:        parameter.DefaultFPS,
		ScoresPath: DefaultScoresPath(),
		Theme:      parameter.DefaultThemeColor,
		Arena: Arena{
			Radius:            parameter.ArenaRadius,
			GoalWidth:         parameter.GoalWidth,
			GoalHeight:        parameter.GoalHeight,
			GoalRotationSpeed: parameter.GoalRotationSpeed,
		},
	}
}

// DefaultScoresPath places the score file in the user config dir, or the working dir without one
func DefaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scores.toml"
	}
	return filepath.Join(dir, "ringball", "scores.toml")
}

// Load resolves defaults, the optional file at path and the environment including ./.env
func Load(path string) (Config, error) {
	return LoadWithEnv(path, ".env")
}

// LoadWithEnv is Load with an explicit .env location; a missing env file is ignored
func LoadWithEnv(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, "read env file %s", envFile)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("FPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"FPS")
		}
		c.FPS = n
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"SEED")
		}
		c.Seed = n
	}
	if v, ok := lookup("SCORES"); ok {
		c.ScoresPath = v
	}
	if v, ok := lookup("THEME"); ok {
		c.Theme = v
	}
	for name, dst := range map[string]*bool{"MUTE": &c.Mute, "DEBUG": &c.Debug} {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrap(err, EnvPrefix+name)
			}
			*dst = b
		}
	}
	for name, dst := range map[string]*float64{
		"ARENA_RADIUS":        &c.Arena.Radius,
		"GOAL_WIDTH":          &c.Arena.GoalWidth,
		"GOAL_HEIGHT":         &c.Arena.GoalHeight,
		"GOAL_ROTATION_SPEED": &c.Arena.GoalRotationSpeed,
	} {
		if v, ok := lookup(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.Wrap(err, EnvPrefix+name)
			}
			*dst = f
		}
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Validate rejects geometry and timing the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	case c.Arena.Radius <= 0:
		return errors.Errorf("arena radius must be positive, got %v", c.Arena.Radius)
	case c.Arena.Radius > parameter.ArenaWidth/2 || c.Arena.Radius > parameter.ArenaHeight/2:
		return errors.Errorf("arena radius %v does not fit the %vx%v field", c.Arena.Radius, parameter.ArenaWidth, parameter.ArenaHeight)
	case c.Arena.GoalWidth <= 0 || c.Arena.GoalWidth >= 2*c.Arena.Radius:
		return errors.Errorf("goal width %v must be in (0, %v)", c.Arena.GoalWidth, 2*c.Arena.Radius)
	case c.Arena.GoalHeight <= 0 || c.Arena.GoalHeight >= c.Arena.Radius:
		return errors.Errorf("goal height %v must be in (0, %v)", c.Arena.GoalHeight, c.Arena.Radius)
	}
	if _, err := theme.Parse(c.Theme); err != nil {
		return err
	}
	if c.ScoresPath == "" {
		return errors.New("scores path is empty")
	}
	return nil
}

// FrameInterval is the scheduler period for FPS
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
