package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the controller connection settings
type Config struct {
	Host      string `envconfig:"NDFC_HOST"`
	Username  string `envconfig:"NDFC_USERNAME"`
	Password  string `envconfig:"NDFC_PASSWORD"`
	Domain    string `envconfig:"NDFC_DOMAIN" default:"local"`
	Fabric    string `envconfig:"DEFAULT_FABRIC"`
	SSLVerify bool   `envconfig:"SSL_VERIFY" default:"false"`
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Command-line parameters (passed as opts)
// 2. .env file (loaded into the environment before this runs)
// 3. Environment variables
// 4. Default values
func Load(opts *Config) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if opts != nil {
		if opts.Host != "" {
			cfg.Host = opts.Host
		}
		if opts.Username != "" {
			cfg.Username = opts.Username
		}
		if opts.Password != "" {
			cfg.Password = opts.Password
		}
		if opts.Domain != "" {
			cfg.Domain = opts.Domain
		}
		if opts.Fabric != "" {
			cfg.Fabric = opts.Fabric
		}
	}

	if cfg.Domain == "" {
		cfg.Domain = "local"
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize cleans up the host URL. Safe to call again after interactive
// prompts have filled in missing values.
func (c *Config) Normalize() {
	c.Host = strings.TrimSpace(c.Host)
	if c.Host != "" && !strings.HasPrefix(c.Host, "http://") && !strings.HasPrefix(c.Host, "https://") {
		c.Host = "https://" + c.Host
	}
	c.Host = strings.TrimRight(c.Host, "/")
}

// Validate checks that everything needed for a controller session is present.
func (c *Config) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "host (NDFC_HOST)")
	}
	if c.Username == "" {
		missing = append(missing, "username (NDFC_USERNAME)")
	}
	if c.Password == "" {
		missing = append(missing, "password (NDFC_PASSWORD)")
	}
	if c.Fabric == "" {
		missing = append(missing, "fabric (DEFAULT_FABRIC)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}
