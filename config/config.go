// Package config loads process configuration from the environment and
// optional resource descriptors from the data directory.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bytedance/sonic"
)

// Config is the process-level configuration, read once at startup.
type Config struct {
	Host      string
	Port      int
	DataDir   string
	LogLevel  string
	JWTSecret string
	RateLimit int // requests per minute per IP; 0 disables the limiter
}

// Load reads a .env file when present, then the environment. Missing
// values fall back to defaults; the only parse failures are non-numeric
// PORT or RATE_LIMIT values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:      getEnv("HOST", "0.0.0.0"),
		Port:      5001,
		DataDir:   getEnv("DATA_DIR", "data"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		cfg.Port = p
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		cfg.RateLimit = n
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Resources names the optional override files inside the data directory.
type Resources struct {
	LexiconFile   string `yaml:"lexicon_file"`
	ScriptMapFile string `yaml:"script_map_file"`
}

// LoadResources reads config.yaml from the data directory.
func LoadResources(dataDir string) (*Resources, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		return nil, err
	}
	var r Resources
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadJSON reads and decodes a JSON resource file.
func LoadJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
