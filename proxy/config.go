package proxy

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode selects logging verbosity and format.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// ParseMode accepts the long and short mode names. An empty string means
// production.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return ModeDevelopment, nil
	case "production", "prod", "":
		return ModeProduction, nil
	default:
		return "", fmt.Errorf("unknown mode %q: want development or production", s)
	}
}

const (
	DefaultPort           = 3000
	DefaultEndpointHeader = "SalesforceProxy-Endpoint"
	// DefaultEndpointPattern admits Salesforce API hosts only.
	DefaultEndpointPattern = `^https://[\w.-]+\.(force|salesforce|cloudforce|database)\.com/`
	DefaultTimeout         = 60 * time.Second
)

// defaultForwardHeaders are the request headers copied upstream, besides any
// "Sforce-" prefixed ones.
var defaultForwardHeaders = []string{
	"Authorization",
	"Content-Type",
	"Accept",
	"Accept-Encoding",
	"Cookie",
	"X-Sfdc-Session",
	"SOAPAction",
	"Sforce-Auto-Assign",
	"If-Modified-Since",
	"X-User-Agent",
}

// Config configures a Server.
type Config struct {
	Port            int           `yaml:"port"`
	Mode            Mode          `yaml:"mode"`
	EndpointHeader  string        `yaml:"endpoint_header"`
	EndpointPattern string        `yaml:"endpoint_pattern"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ForwardHeaders  []string      `yaml:"forward_headers"`
	Timeout         time.Duration `yaml:"timeout"`
}

func DefaultConfig() Config {
	return Config{
		Port:            DefaultPort,
		Mode:            ModeProduction,
		EndpointHeader:  DefaultEndpointHeader,
		EndpointPattern: DefaultEndpointPattern,
		AllowedOrigins:  []string{"*"},
		ForwardHeaders:  append([]string(nil), defaultForwardHeaders...),
		Timeout:         DefaultTimeout,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys absent from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Mode = mode

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if strings.TrimSpace(c.EndpointHeader) == "" {
		return errors.New("endpoint header is not set")
	}
	if c.EndpointPattern == "" {
		return errors.New("endpoint pattern is not set")
	}
	if _, err := regexp.Compile(c.EndpointPattern); err != nil {
		return fmt.Errorf("endpoint pattern: %w", err)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("no allowed origins are defined")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	return nil
}

// Addr is the listen address for Port on all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
