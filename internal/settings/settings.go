// Package settings loads touchview engine configuration with viper.
//
// Values come from, in increasing priority: built-in defaults, a
// touchview.yaml file, and TOUCHVIEW_* environment variables. Durations
// accept Go syntax ("300ms", "1.5s").
package settings

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/phanxgames/touchview"
)

// Keys recognized in config files. The environment form is upper-cased with
// the TOUCHVIEW_ prefix, e.g. TOUCHVIEW_MAX_ZOOM.
const (
	KeyMinZoom        = "min_zoom"
	KeyMaxZoom        = "max_zoom"
	KeyDoubleTapDelay = "double_tap_delay"
	KeyLongPressDelay = "long_press_delay"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "TOUCHVIEW"

// NewViper returns a viper instance with touchview defaults and environment
// binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMinZoom, touchview.DefaultMinZoom)
	v.SetDefault(KeyMaxZoom, touchview.DefaultMaxZoom)
	v.SetDefault(KeyDoubleTapDelay, touchview.DefaultDoubleTapDelay)
	v.SetDefault(KeyLongPressDelay, touchview.DefaultLongPressDelay)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Read loads the config file at path into v. With an empty path it looks
// for touchview.yaml in the working directory and tolerates its absence.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("touchview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Decode builds an engine Config from v. Callbacks, Sink and Logger are
// left for the caller to set.
func Decode(v *viper.Viper) (touchview.Config, error) {
	cfg := touchview.Config{
		MinZoom:        v.GetFloat64(KeyMinZoom),
		MaxZoom:        v.GetFloat64(KeyMaxZoom),
		DoubleTapDelay: v.GetDuration(KeyDoubleTapDelay),
		LongPressDelay: v.GetDuration(KeyLongPressDelay),
	}
	if cfg.MinZoom <= 0 || cfg.MaxZoom <= 0 {
		return touchview.Config{}, fmt.Errorf("zoom limits must be positive (min %v, max %v)", cfg.MinZoom, cfg.MaxZoom)
	}
	if cfg.MinZoom > cfg.MaxZoom {
		return touchview.Config{}, fmt.Errorf("%s %v exceeds %s %v", KeyMinZoom, cfg.MinZoom, KeyMaxZoom, cfg.MaxZoom)
	}
	if cfg.DoubleTapDelay < 0 || cfg.LongPressDelay < 0 {
		return touchview.Config{}, errors.New("delays must not be negative")
	}
	return cfg, nil
}

// Load is NewViper, Read and Decode in one call.
func Load(path string) (touchview.Config, error) {
	v := NewViper()
	if err := Read(v, path); err != nil {
		return touchview.Config{}, err
	}
	return Decode(v)
}
