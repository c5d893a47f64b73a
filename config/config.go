package config

import (
	"time"

	"github.com/ONSdigital/dp-onsapi/onsapi"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

var cfg *Config

// Config represents service configuration for dp-onsapi
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	ONSAPIURL                  string        `envconfig:"ONS_API_URL"`
	ONSAPIKey                  string        `envconfig:"ONS_API_KEY" json:"-"`
	ONSAPIFormat               string        `envconfig:"ONS_API_FORMAT"`
	Language                   string        `envconfig:"ONS_API_LANGUAGE"`
	DownloadType               string        `envconfig:"ONS_API_DOWNLOAD_TYPE"`
	ONSAPITimeout              time.Duration `envconfig:"ONS_API_TIMEOUT"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
}

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	c := &Config{
		BindAddr:                   ":26900",
		ONSAPIURL:                  onsapi.DefaultRoot,
		ONSAPIFormat:               string(onsapi.FormatJSON),
		Language:                   onsapi.DefaultLanguage,
		DownloadType:               onsapi.DefaultDownloadType,
		ONSAPITimeout:              10 * time.Second,
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
	}

	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}

	cfg = c
	return cfg, nil
}

// Validate checks the config can be used to reach the ONS API
func (c *Config) Validate() error {
	if c.ONSAPIKey == "" {
		return errors.New("ONS_API_KEY must be set")
	}
	if c.ONSAPIFormat != string(onsapi.FormatJSON) {
		return errors.Errorf("unsupported ONS_API_FORMAT %q, only %q responses can be decoded", c.ONSAPIFormat, onsapi.FormatJSON)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return errors.Wrapf(err, "invalid ONS_API_LANGUAGE %q", c.Language)
	}
	if c.DownloadType == "" {
		return errors.New("ONS_API_DOWNLOAD_TYPE must be set")
	}
	return nil
}

// ClientConfig returns the settings of the ONS API client
func (c *Config) ClientConfig() onsapi.Config {
	return onsapi.Config{
		Root:         c.ONSAPIURL,
		APIKey:       c.ONSAPIKey,
		Format:       onsapi.Format(c.ONSAPIFormat),
		Language:     c.Language,
		DownloadType: c.DownloadType,
	}
}
