// Package config loads the configuration of the favorites CLI from defaults, an optional config file,
// TMDB_ environment variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clambin/favorites/pkg/tmdb"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	APIKey                string        `mapstructure:"api_key"`
	Username              string        `mapstructure:"username"`
	Password              string        `mapstructure:"password"`
	BaseURL               string        `mapstructure:"base_url"`
	ImageBaseURL          string        `mapstructure:"image_base_url"`
	Timeout               time.Duration `mapstructure:"timeout"`
	FavoriteTimeout       time.Duration `mapstructure:"favorite_timeout"`
	MaxConcurrentRequests int64         `mapstructure:"max_concurrent_requests"`
	PosterCache           PosterCache   `mapstructure:"poster_cache"`
	Metrics               Metrics       `mapstructure:"metrics"`
	Debug                 bool          `mapstructure:"debug"`
}

type PosterCache struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type Metrics struct {
	Addr string `mapstructure:"addr"`
}

var ErrMissingAPIKey = errors.New("api_key is required")

// Load reads the configuration. If configPath is empty, config.yaml is looked up in the current directory,
// $HOME/.tmdb-favorites and /etc/tmdb-favorites. A missing config file is not an error. Flags that were set
// on the command line override all other sources.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TMDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("flags: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tmdb-favorites"))
		}
		v.AddConfigPath("/etc/tmdb-favorites/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("base_url", tmdb.DefaultBaseURL)
	v.SetDefault("image_base_url", tmdb.DefaultImageBaseURL)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("favorite_timeout", 10*time.Second)
	v.SetDefault("max_concurrent_requests", 15)
	v.SetDefault("poster_cache.ttl", time.Hour)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("debug", false)
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	for key, value := range map[string]string{"base_url": c.BaseURL, "image_base_url": c.ImageBaseURL} {
		if u, err := url.Parse(value); err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%s: invalid url %q", key, value)
		}
	}
	if c.Timeout < 0 || c.FavoriteTimeout < 0 || c.PosterCache.TTL < 0 {
		return errors.New("timeouts must not be negative")
	}
	if c.MaxConcurrentRequests < 1 {
		return fmt.Errorf("max_concurrent_requests must be at least 1, got %d", c.MaxConcurrentRequests)
	}
	return nil
}
