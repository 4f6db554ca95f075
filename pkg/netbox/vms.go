package netbox

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListVirtualMachines retrieves all virtual machine records, following
// pagination.
func (c *Client) ListVirtualMachines(ctx context.Context) ([]VirtualMachine, error) {
	var vms []VirtualMachine
	err := c.list(ctx, virtualMachinesPath, func(results json.RawMessage) error {
		var page []VirtualMachine
		if err := json.Unmarshal(results, &page); err != nil {
			return fmt.Errorf("error decoding virtual machine page: %w", err)
		}
		vms = append(vms, page...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error listing virtual machines: %w", err)
	}
	return vms, nil
}
