// Package config loads qrstudio settings from config.yaml, QRSTUDIO_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Render RenderConfig `mapstructure:"render"`
	Logo   LogoConfig   `mapstructure:"logo"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig is the HTTP listener.
type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

// RenderConfig holds QR output defaults.
type RenderConfig struct {
	Size            int    `mapstructure:"size"`
	PreviewSize     int    `mapstructure:"preview_size"`
	MaxSize         int    `mapstructure:"max_size"`
	QuietZone       int    `mapstructure:"quiet_zone"`
	ErrorCorrection string `mapstructure:"error_correction"`
}

// LogoConfig holds logo plate and upload settings.
type LogoConfig struct {
	Scale          int           `mapstructure:"scale"`
	Radius         float64       `mapstructure:"radius"`
	Border         float64       `mapstructure:"border"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	CacheEntries   int           `mapstructure:"cache_entries"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Debug     bool   `mapstructure:"debug"`
	LogToFile bool   `mapstructure:"log_to_file"`
	LogsDir   string `mapstructure:"logs_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_dir", "web/static")

	v.SetDefault("render.size", 1668)
	v.SetDefault("render.preview_size", 336)
	v.SetDefault("render.max_size", 4000)
	v.SetDefault("render.quiet_zone", 17)
	v.SetDefault("render.error_correction", "H")

	v.SetDefault("logo.scale", 35)
	v.SetDefault("logo.radius", 40)
	v.SetDefault("logo.border", 8)
	v.SetDefault("logo.max_upload_bytes", 5<<20)
	v.SetDefault("logo.cache_ttl", "30m")
	v.SetDefault("logo.cache_entries", 256)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.log_to_file", false)
	v.SetDefault("log.logs_dir", "logs")
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := load(viper.New(), "", false)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration. With an empty path, config.yaml in the
// working directory is used if present. PORT overrides server.port.
func Load(path string) (*Config, error) {
	return load(viper.New(), path, true)
}

func load(v *viper.Viper, path string, readFile bool) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("QRSTUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if readFile {
		if path != "" {
			v.SetConfigFile(path)
		} else {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if path != "" || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that cannot produce a QR code.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	case c.Render.Size <= 0:
		return fmt.Errorf("render.size must be positive")
	case c.Render.MaxSize < c.Render.Size:
		return fmt.Errorf("render.max_size %d is below render.size %d", c.Render.MaxSize, c.Render.Size)
	case c.Render.QuietZone < 0 || 2*c.Render.QuietZone >= c.Render.Size:
		return fmt.Errorf("render.quiet_zone %d does not fit render.size %d", c.Render.QuietZone, c.Render.Size)
	case c.Logo.Scale <= 0 || c.Logo.Scale > 100:
		return fmt.Errorf("logo.scale must be a percentage")
	case c.Logo.MaxUploadBytes <= 0:
		return fmt.Errorf("logo.max_upload_bytes must be positive")
	}
	return nil
}

// Addr is the listen address for gin.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
