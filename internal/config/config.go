// Package config resolves settings from defaults, an optional config file,
// .env files, PASSFORGE_* environment variables and bound CLI flags.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/vaultpass/passforge/internal/logger"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "PASSFORGE"

type Generator struct {
	Length    int  `mapstructure:"length"`
	Uppercase bool `mapstructure:"uppercase"`
	Lowercase bool `mapstructure:"lowercase"`
	Numbers   bool `mapstructure:"numbers"`
	Symbols   bool `mapstructure:"symbols"`
	Count     int  `mapstructure:"count"`
}

type Config struct {
	Generator Generator  `mapstructure:"generator"`
	Log       logger.Log `mapstructure:"log"`
}

var defaults = map[string]any{
	"generator.length":    16,
	"generator.uppercase": true,
	"generator.lowercase": true,
	"generator.numbers":   true,
	"generator.symbols":   true,
	"generator.count":     1,
	"log.level":           "warn",
	"log.reportcaller":    false,
	"log.console.enabled": true,
	"log.console.pretty":  true,
	"log.file.enabled":    false,
	"log.file.path":       "./log",
	"log.file.name":       "passforge.log",
	"log.file.maxsize":    10,
	"log.file.maxbackups": 3,
	"log.file.maxage":     28,
}

// LoadDotEnv loads .env files into the process environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "failed to read .env file")
	}
	return nil
}

// Load resolves the configuration into v. path names an optional config file;
// when empty only defaults, environment and flags bound to v are used.
func Load(v *viper.Viper, path string) (Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return cfg, validate(cfg)
}

// validate checks the settings the application cannot run without. Range
// checks on length and count belong to the generator service.
func validate(c Config) error {
	invalidErrMessage := "invalid config"

	if c.Generator.Length < 0 {
		return errors.Wrap(ErrNegativeLength, invalidErrMessage)
	}

	if c.Generator.Count < 1 {
		return errors.Wrap(ErrCountTooSmall, invalidErrMessage)
	}

	if c.Log.Level == "" {
		return errors.Wrap(ErrEmptyLogLevel, invalidErrMessage)
	}

	return nil
}
