// Package config resolves the tool's configuration from the environment,
// the only configuration channel AWX/Tower offer a custom inventory script.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"towerbox/pkg/inventory"
)

const (
	envHostURL            = "NETBOX_HOST_URL"
	envAuthToken          = "NETBOX_AUTH_TOKEN"
	envGroupBy            = "NETBOX_GROUP_BY"
	envInsecureSkipVerify = "NETBOX_INSECURE_SKIP_VERIFY"
	envRequestTimeout     = "NETBOX_REQUEST_TIMEOUT"
)

const defaultTimeout = 30 * time.Second

// Config holds the resolved settings.
type Config struct {
	// NetBox API URL, eg. https://netbox.example.com
	HostURL string

	// NetBox API token
	AuthToken string

	// Grouping attributes, default site and platform
	GroupBy []string

	// Ignore invalid SSL chains
	InsecureSkipVerify bool

	// Per-request HTTP timeout
	Timeout time.Duration
}

// FromEnv reads and validates the configuration from environment variables.
func FromEnv() (*Config, error) {
	c := &Config{
		HostURL:   os.Getenv(envHostURL),
		AuthToken: os.Getenv(envAuthToken),
		GroupBy:   inventory.DefaultGroupings,
		Timeout:   defaultTimeout,
	}

	if raw, found := os.LookupEnv(envGroupBy); found {
		c.GroupBy = splitGroupings(raw)
	}

	if raw, found := os.LookupEnv(envInsecureSkipVerify); found {
		insecure, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", envInsecureSkipVerify, raw, err)
		}
		c.InsecureSkipVerify = insecure
	}

	if raw, found := os.LookupEnv(envRequestTimeout); found {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", envRequestTimeout, raw, err)
		}
		c.Timeout = timeout
	}

	if err := c.check(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) check() error {
	if c.HostURL == "" {
		return fmt.Errorf("%q env var is not set", envHostURL)
	}
	if c.AuthToken == "" {
		return fmt.Errorf("%q env var is not set", envAuthToken)
	}
	if len(c.GroupBy) == 0 {
		return fmt.Errorf("%q must name at least one grouping", envGroupBy)
	}
	for _, grouping := range c.GroupBy {
		if !inventory.ValidGrouping(grouping) {
			return fmt.Errorf("unknown grouping %q in %s", grouping, envGroupBy)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%q must be a positive duration", envRequestTimeout)
	}
	return nil
}

func splitGroupings(raw string) []string {
	var groupings []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			groupings = append(groupings, part)
		}
	}
	return groupings
}
