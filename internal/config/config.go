// Package config resolves recipebot settings from defaults, an optional
// ~/.recipebot/config.yaml, a .env file and RECIPEBOT_* environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/recipebot/internal/availability"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/logging"
	"github.com/alexanderramin/recipebot/internal/nutrition"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "RECIPEBOT"
	// DirName is created under the user's home directory.
	DirName        = ".recipebot"
	defaultRecipes = "recipes.txt"
	defaultDBName  = "recipebot.db"
	configFileName = "config"
	configFileType = "yaml"
)

type Config struct {
	DBPath         string       `mapstructure:"db_path"`
	RecipesPath    string       `mapstructure:"recipes_path"`
	ICSURL         string       `mapstructure:"ics_url"`
	DefaultMinutes int          `mapstructure:"default_minutes"`
	RecentDays     int          `mapstructure:"recent_days"`
	Window         WindowConfig `mapstructure:"window"`
	Goals          GoalsConfig  `mapstructure:"goals"`
	Log            LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	StartHour int `mapstructure:"start_hour"`
	EndHour   int `mapstructure:"end_hour"`
}

type GoalsConfig struct {
	ProteinG int `mapstructure:"protein_g"`
	FiberG   int `mapstructure:"fiber_g"`
	Calories int `mapstructure:"calories"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in settings for a home directory. The
// recipes path is left empty and resolved by Load.
func DefaultConfig(home string) Config {
	goals := domain.DefaultGoals()
	return Config{
		DBPath:         filepath.Join(home, DirName, defaultDBName),
		DefaultMinutes: availability.DefaultMinutes,
		RecentDays:     nutrition.DefaultRecentDays,
		Window: WindowConfig{
			StartHour: availability.DefaultWindow.StartHour,
			EndHour:   availability.DefaultWindow.EndHour,
		},
		Goals: GoalsConfig{
			ProteinG: goals.ProteinG,
			FiberG:   goals.FiberG,
			Calories: goals.Calories,
		},
		Log: LogConfig{Level: "warn", Format: "console"},
	}
}

// LoadConfig loads .env best-effort and then resolves settings for the
// current user.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Load(home)
}

// Load resolves settings with home as the user's home directory.
func Load(home string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig(home))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(filepath.Join(home, DirName))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.RecipesPath == "" {
		cfg.RecipesPath = resolveRecipesPath(home)
	}
	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.RecipesPath = expandHome(cfg.RecipesPath, home)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("recipes_path", def.RecipesPath)
	v.SetDefault("ics_url", def.ICSURL)
	v.SetDefault("default_minutes", def.DefaultMinutes)
	v.SetDefault("recent_days", def.RecentDays)
	v.SetDefault("window.start_hour", def.Window.StartHour)
	v.SetDefault("window.end_hour", def.Window.EndHour)
	v.SetDefault("goals.protein_g", def.Goals.ProteinG)
	v.SetDefault("goals.fiber_g", def.Goals.FiberG)
	v.SetDefault("goals.calories", def.Goals.Calories)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
}

// resolveRecipesPath prefers ./recipes.txt during development and falls back
// to the copy under the home directory.
func resolveRecipesPath(home string) string {
	if stat, err := os.Stat(defaultRecipes); err == nil && !stat.IsDir() {
		return defaultRecipes
	}
	return filepath.Join(home, DirName, defaultRecipes)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c Config) Validate() error {
	var errs []error
	if err := c.CookingWindow().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.DefaultMinutes <= 0 {
		errs = append(errs, fmt.Errorf("default_minutes must be positive, got %d", c.DefaultMinutes))
	}
	if c.RecentDays < 0 {
		errs = append(errs, fmt.Errorf("recent_days must not be negative, got %d", c.RecentDays))
	}
	if c.Goals.ProteinG <= 0 || c.Goals.FiberG <= 0 || c.Goals.Calories <= 0 {
		errs = append(errs, fmt.Errorf("goals must be positive, got protein %d, fiber %d, calories %d",
			c.Goals.ProteinG, c.Goals.FiberG, c.Goals.Calories))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) CookingWindow() availability.Window {
	return availability.Window{StartHour: c.Window.StartHour, EndHour: c.Window.EndHour}
}

func (c Config) NutritionGoals() domain.NutritionGoals {
	return domain.NutritionGoals{ProteinG: c.Goals.ProteinG, FiberG: c.Goals.FiberG, Calories: c.Goals.Calories}
}

// Logging converts the log section; output and colour are decided by the
// caller.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}
