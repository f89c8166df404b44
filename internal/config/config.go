package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. PORTFOLIO_PORT.
const EnvPrefix = "PORTFOLIO"

// Config holds all service configuration.
type Config struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	AllowedOrigin   string        `mapstructure:"allowed_origin"`
	ServiceName     string        `mapstructure:"service_name"`
	DatabaseURL     string        `mapstructure:"database_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Log             LogConfig     `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8000,
		AllowedOrigin:   "http://localhost:3000",
		ServiceName:     "Dubovyk Website API",
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Port < 1 || c.Port > 65535 {
		warnings = append(warnings, fmt.Sprintf("port %d is outside the range 1-65535", c.Port))
	}

	// Browsers reject a wildcard origin on credentialed requests.
	if c.AllowedOrigin == "" || c.AllowedOrigin == "*" {
		warnings = append(warnings, fmt.Sprintf("allowed_origin %q will not work with credentialed requests; set the frontend URL", c.AllowedOrigin))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		warnings = append(warnings, fmt.Sprintf("log format %q is unknown, falling back to text", c.Log.Format))
	}

	if c.ShutdownTimeout <= 0 {
		warnings = append(warnings, fmt.Sprintf("shutdown_timeout %s is not positive, connections will be cut on shutdown", c.ShutdownTimeout))
	}

	return warnings
}

// Load reads configuration from an optional file and the environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment. Variables that are already set keep their value, and a
// missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("host", d.Host)
	v.SetDefault("port", d.Port)
	v.SetDefault("allowed_origin", d.AllowedOrigin)
	v.SetDefault("service_name", d.ServiceName)
	v.SetDefault("database_url", d.DatabaseURL)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
