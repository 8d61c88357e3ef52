// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v6"

	"clientes/internal/api"
)

// Config holds everything cmd/clientes needs to wire the application.
type Config struct {
	APIURL   string `env:"CLIENTES_API_URL"`
	LogFile  string `env:"CLIENTES_LOG_FILE"`
	LogLevel string `env:"CLIENTES_LOG_LEVEL" envDefault:"info"`

	// Tracing is enabled only when an OTLP endpoint is set.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"clientes"`
}

// Load parses the environment. CLIENTES_API_URL falls back to api.DefaultBaseURL.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = api.DefaultBaseURL
	}
	return cfg, nil
}

// Validate checks that the API URL is an absolute http(s) URL and trims any
// trailing slash from it.
func (c *Config) Validate() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api url %q: missing host", c.APIURL)
	}
	return nil
}

// TracingEnabled reports whether an OTLP endpoint is configured.
func (c Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}
