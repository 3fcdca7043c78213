package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/rezonia/zugferd/internal/logger"
)

// EnvPrefix is prepended to every environment override, e.g. ZUGFERD_LOG_LEVEL
const EnvPrefix = "ZUGFERD"

// Config holds all application configuration
type Config struct {
	Log    LogConfig
	Output OutputConfig
	Server ServerConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string `validate:"oneof=trace debug info warn error"`
	Format     string `validate:"oneof=json console"`
	Output     string // stdout, stderr, or file path
	TimeFormat string
}

// OutputConfig controls how documents are written
type OutputConfig struct {
	Indent int `validate:"min=-1,max=8"` // spaces per level, -1 for compact output
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Address      string        `validate:"required"`
	MaxBodySize  int64         `validate:"gt=0"`
	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
	Debug        bool
}

// Logger converts the log section for logger.Setup
func (c LogConfig) Logger() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		TimeFormat: c.TimeFormat,
	}
}

// Load loads configuration from a TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with ZUGFERD_ prefix (e.g., ZUGFERD_SERVER_ADDRESS)
// 2. The file at path, or zugferd.toml in the working directory when path is empty
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("zugferd")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// a missing default file is fine, an explicit one must exist
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration without reading files or the environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Log: LogConfig{
			Level:      strings.ToLower(v.GetString("log.level")),
			Format:     strings.ToLower(v.GetString("log.format")),
			Output:     v.GetString("log.output"),
			TimeFormat: v.GetString("log.time_format"),
		},
		Output: OutputConfig{
			Indent: v.GetInt("output.indent"),
		},
		Server: ServerConfig{
			Address:      v.GetString("server.address"),
			MaxBodySize:  v.GetInt64("server.max_body_size"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			Debug:        v.GetBool("server.debug"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := logger.DefaultConfig()
	v.SetDefault("log.level", d.Level)
	v.SetDefault("log.format", d.Format)
	v.SetDefault("log.output", d.Output)
	v.SetDefault("log.time_format", d.TimeFormat)

	v.SetDefault("output.indent", 2)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.max_body_size", 10<<20)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.debug", false)
}

// Validate checks field constraints and reports every violation at once
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
