// Package config loads the service configuration from an optional YAML
// file with environment overrides.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config holds the runtime settings of the service.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	MongoURL   string `yaml:"mongo_url"`
	MongoDB    string `yaml:"mongo_db"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		ListenAddr: ":9000",
		MongoURL:   "mongodb://localhost:27017",
		MongoDB:    "cvriskservice",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path, layered over the defaults. An empty
// path skips the file. CVRISK_* environment variables override both.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config file")
		}
		if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
			return cfg, errors.Wrap(err, "parsing config file")
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		"CVRISK_LISTEN_ADDR": &c.ListenAddr,
		"CVRISK_MONGO_URL":   &c.MongoURL,
		"CVRISK_MONGO_DB":    &c.MongoDB,
		"CVRISK_LOG_LEVEL":   &c.LogLevel,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}
