package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/arthur-debert/boxtext/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "BOXTEXT_"

// UserConfigPath returns the user configuration file. BOXTEXT_CONFIG, when
// set, replaces the XDG location.
func UserConfigPath() string {
	if p := os.Getenv("BOXTEXT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "boxtext", "config.toml")
}

// Load loads the configuration from every source, applying overrides last.
// Override keys are dotted paths such as "render.width".
func Load(overrides map[string]interface{}) (*Config, error) {
	return LoadFrom(UserConfigPath(), overrides)
}

// LoadFrom is Load with an explicit user file. A missing file is skipped.
func LoadFrom(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	// 3. Environment
	// BOXTEXT_CONFIG names the file itself and is not a setting.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		if s == "BOXTEXT_CONFIG" {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Render.Width < 0 {
		return errors.Newf(errors.ErrConfigLoad, "render.width must not be negative, got %d", cfg.Render.Width).
			WithDetail("field", "render.width")
	}
	switch strings.ToLower(cfg.Render.Structured) {
	case "json", "yaml":
	default:
		return errors.Newf(errors.ErrConfigLoad, "render.structured must be json or yaml, got %q", cfg.Render.Structured).
			WithDetail("field", "render.structured")
	}
	return nil
}
