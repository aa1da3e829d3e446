// Package config loads pagenav settings from a YAML file, PAGENAV_*
// environment variables and command line flags, in increasing priority.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Alp4ka/pagenav"
)

const EnvPrefix = "PAGENAV"

// Settings is the full configuration of the pagenav command.
type Settings struct {
	Pagination pagenav.Config `mapstructure:"pagination"`
	// LogLevel - one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Level parses LogLevel.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': %w", s.LogLevel, err)
	}

	return level, nil
}

// FlagKeys maps command line flag names to setting keys.
var FlagKeys = map[string]string{
	"disabled":        "pagination.disabled",
	"boundary-links":  "pagination.boundary_links",
	"direction-links": "pagination.direction_links",
	"ellipses":        "pagination.ellipses",
	"max-size":        "pagination.max_size",
	"page-size":       "pagination.page_size",
	"rotate":          "pagination.rotate",
	"size":            "pagination.size",
	"log-level":       "log_level",
}

func setDefaults(v *viper.Viper) {
	d := pagenav.DefaultConfig()

	v.SetDefault("pagination.disabled", d.Disabled)
	v.SetDefault("pagination.boundary_links", d.BoundaryLinks)
	v.SetDefault("pagination.direction_links", d.DirectionLinks)
	v.SetDefault("pagination.ellipses", d.Ellipses)
	v.SetDefault("pagination.max_size", d.MaxSize)
	v.SetDefault("pagination.page_size", d.PageSize)
	v.SetDefault("pagination.rotate", d.Rotate)
	v.SetDefault("pagination.size", string(d.Size))
	v.SetDefault("log_level", "info")
}

// Load reads settings. path may be empty, in which case only environment
// variables and flags override the defaults. flags may be nil; flags missing
// from the set are skipped, and only flags changed on the command line take
// effect.
func Load(path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("cannot bind flag '%s': %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("cannot decode config: %w", err)
	}

	if err := s.Pagination.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid pagination config: %w", err)
	}

	if _, err := s.Level(); err != nil {
		return Settings{}, err
	}

	return s, nil
}
