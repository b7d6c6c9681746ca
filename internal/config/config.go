// Package config loads the engine's runtime settings the same way
// the teacher loads its server settings: viper, a TOML file with
// environment-variable overrides, sane defaults when neither is
// present.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds every knob the engine and its CLI need.
type Config struct {
	Engine EngineConfig
	Save   SaveConfig
}

// EngineConfig controls league generation and simulation pacing.
type EngineConfig struct {
	Seed            int64
	CalendarDensity float64
	GamesPerMatchup int
	UserTeam        string
}

// SaveConfig names where the four envelope files live on disk.
type SaveConfig struct {
	Dir string
}

var globalConfig *Config

// Load reads configuration from configPath, or "conf.toml" in the
// current directory (and a couple of conventional fallback
// locations) when configPath is empty. Missing config files are not
// an error: defaults and environment variables carry the run.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.foundersleague")
		v.AddConfigPath("/etc/foundersleague")
	}

	v.SetDefault("engine.seed", 1)
	v.SetDefault("engine.calendar_density", 0.60)
	v.SetDefault("engine.games_per_matchup", 3)
	v.SetDefault("engine.user_team", "")
	v.SetDefault("save.dir", "save")

	v.AutomaticEnv()
	v.BindEnv("engine.seed", "LEAGUE_SEED")
	v.BindEnv("engine.calendar_density", "LEAGUE_CALENDAR_DENSITY")
	v.BindEnv("engine.games_per_matchup", "LEAGUE_GAMES_PER_MATCHUP")
	v.BindEnv("engine.user_team", "LEAGUE_USER_TEAM")
	v.BindEnv("save.dir", "LEAGUE_SAVE_DIR")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "No config file found, using defaults and environment variables\n")
	}

	cfg := &Config{
		Engine: EngineConfig{
			Seed:            v.GetInt64("engine.seed"),
			CalendarDensity: v.GetFloat64("engine.calendar_density"),
			GamesPerMatchup: v.GetInt("engine.games_per_matchup"),
			UserTeam:        v.GetString("engine.user_team"),
		},
		Save: SaveConfig{
			Dir: v.GetString("save.dir"),
		},
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the global configuration loaded by the most recent Load.
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded; call config.Load() first")
	}
	return globalConfig
}

// MustLoad loads configuration or panics.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
