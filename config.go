package emit

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file-loadable subset of emitter configuration. Hosts
// that configure their emitter from a settings file can decode it here
// and expand it into options:
//
//	cfg, err := emit.LoadConfig("emitter.toml")
//	opts, err := cfg.Options()
//	em := emit.New(opts...)
type Config struct {
	// Source is stamped on published event envelopes.
	Source string `toml:"source"`

	// HandlerTimeout bounds each handler invocation, in time.Duration
	// string form ("250ms", "5s"). Empty means no timeout.
	HandlerTimeout string `toml:"handler_timeout"`
}

// LoadConfig reads emitter configuration from a TOML file.
// A missing file is not an error; it returns a zero Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes emitter configuration from TOML data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Options expands the config into emitter options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option

	if c.Source != "" {
		opts = append(opts, WithSource(c.Source))
	}

	if c.HandlerTimeout != "" {
		d, err := time.ParseDuration(c.HandlerTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing handler_timeout: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("handler_timeout must not be negative: %s", c.HandlerTimeout)
		}
		opts = append(opts, WithHandlerTimeout(d))
	}

	return opts, nil
}
