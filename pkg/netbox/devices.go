package netbox

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListDevices retrieves all DCIM device records, following pagination.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	var devices []Device
	err := c.list(ctx, devicesPath, func(results json.RawMessage) error {
		var page []Device
		if err := json.Unmarshal(results, &page); err != nil {
			return fmt.Errorf("error decoding device page: %w", err)
		}
		devices = append(devices, page...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	return devices, nil
}
