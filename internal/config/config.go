package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Log    LogConfig    `yaml:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	Prefix          string        `yaml:"prefix" validate:"required,startswith=/"`
	Mode            string        `yaml:"mode" validate:"oneof=debug release test"`
	MaxUploadMB     int64         `yaml:"max_upload_mb" validate:"min=1"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" validate:"min=1"`
}

var DefaultPaths = []string{"etc/config-dev.yaml", "/etc/healthcare-mock/config.yaml"}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Prefix:          "/server",
			Mode:            "release",
			MaxUploadMB:     32,
			ShutdownTimeout: 10 * time.Second,
		},
		CORS: CORSConfig{AllowOrigins: []string{"*"}},
		Log:  LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
	}
}

// Load reads the first config file found (configFile if set, otherwise
// DefaultPaths) on top of the defaults, then applies environment overrides.
// A .env file in the working directory is loaded before the overrides.
func Load(configFile string) (*Config, error) {
	c := Default()

	paths := DefaultPaths
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if configFile != "" {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			continue
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		break
	}

	// missing .env is the normal case
	_ = godotenv.Load()

	envOverride(&c.Server.Prefix, "API_PREFIX")
	envOverride(&c.Server.Mode, "GIN_MODE")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideList(&c.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideList(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		var out []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			*dst = out
		}
	}
}
