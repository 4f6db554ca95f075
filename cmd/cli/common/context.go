package common

import (
	"fmt"

	"towerbox/pkg/config"
	"towerbox/pkg/netbox"
)

type Context struct {
	Verbose bool
}

// NewNetBoxClient resolves the environment configuration and returns a client
// for the configured NetBox instance.
func NewNetBoxClient() (*netbox.Client, *config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	client, err := netbox.NewClient(cfg.HostURL, cfg.AuthToken, netbox.Options{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Timeout:            cfg.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error creating NetBox client: %w", err)
	}

	return client, cfg, nil
}
