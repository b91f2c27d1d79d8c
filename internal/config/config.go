package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/sketchont/internal/core/enrich"
	"github.com/agenthands/sketchont/internal/core/geometry"
)

const DefaultPath = "config/config.toml"

type ResolutionConfig struct {
	AdjacencyTolerance float64 `toml:"adjacency_tolerance"`
	// ReferenceHops bounds attribute block reference chains; 0 follows them
	// to the end.
	ReferenceHops         int    `toml:"reference_hops"`
	DefaultDatatypePrefix string `toml:"default_datatype_prefix"`
	PlaceholderPrefix     string `toml:"placeholder_prefix"`
}

type ServerConfig struct {
	Port        string   `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	// MaxBodyBytes caps uploaded diagram size.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type LogConfig struct {
	Mode string `toml:"mode"`
}

type Config struct {
	Resolution ResolutionConfig `toml:"resolution"`
	Server     ServerConfig     `toml:"server"`
	Memgraph   MemgraphConfig   `toml:"memgraph"`
	Log        LogConfig        `toml:"log"`
}

func Default() *Config {
	return &Config{
		Resolution: ResolutionConfig{
			AdjacencyTolerance:    geometry.DefaultTolerance,
			DefaultDatatypePrefix: enrich.DefaultDatatypePrefix,
			PlaceholderPrefix:     enrich.DefaultPlaceholderPrefix,
		},
		Server: ServerConfig{
			Port:         "8080",
			CORSOrigins:  []string{"*"},
			MaxBodyBytes: 8 << 20,
		},
		Log: LogConfig{Mode: "development"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by SKETCHONT_CONFIG, or path when the
// variable is unset, then applies environment overrides. A missing file at
// the default path is not an error.
func LoadFromEnv(path string) (*Config, error) {
	if env := os.Getenv("SKETCHONT_CONFIG"); env != "" {
		path = env
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case path == DefaultPath && errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if uri := os.Getenv("MEMGRAPH_URI"); uri != "" {
		c.Memgraph.URI = uri
	}
	if user := os.Getenv("MEMGRAPH_USER"); user != "" {
		c.Memgraph.User = user
	}
	if password := os.Getenv("MEMGRAPH_PASSWORD"); password != "" {
		c.Memgraph.Password = password
	}
	if mode := os.Getenv("LOG_MODE"); mode != "" {
		c.Log.Mode = mode
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Resolution.AdjacencyTolerance < 0 {
		errs = append(errs, fmt.Errorf("resolution.adjacency_tolerance must not be negative, got %v", c.Resolution.AdjacencyTolerance))
	}
	if c.Resolution.ReferenceHops < 0 {
		errs = append(errs, fmt.Errorf("resolution.reference_hops must not be negative, got %d", c.Resolution.ReferenceHops))
	}
	if strings.ContainsAny(c.Resolution.DefaultDatatypePrefix, ": ") {
		errs = append(errs, fmt.Errorf("resolution.default_datatype_prefix '%s' is not a prefix", c.Resolution.DefaultDatatypePrefix))
	}
	switch c.Log.Mode {
	case "", "development", "production":
	default:
		errs = append(errs, fmt.Errorf("log.mode must be development or production, got '%s'", c.Log.Mode))
	}
	if c.Server.MaxBodyBytes < 0 {
		errs = append(errs, errors.New("server.max_body_bytes must not be negative"))
	}
	return errors.Join(errs...)
}
