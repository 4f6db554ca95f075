package inventory

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"towerbox/cmd/cli/common"
	"towerbox/pkg/inventory"
	"towerbox/pkg/netbox"
)

const groupID = "inventory"

func Group(title string) *cobra.Group {
	return &cobra.Group{
		ID:    groupID,
		Title: title,
	}
}

// fetchHosts retrieves devices and virtual machines and flattens them into
// host records.
func fetchHosts(ctx context.Context, client *netbox.Client) ([]inventory.Host, error) {
	devices, err := client.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching devices: %w", err)
	}

	vms, err := client.ListVirtualMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching virtual machines: %w", err)
	}

	hosts := make([]inventory.Host, 0, len(devices)+len(vms))
	for _, device := range devices {
		hosts = append(hosts, inventory.FromDevice(device))
	}
	for _, vm := range vms {
		hosts = append(hosts, inventory.FromVirtualMachine(vm))
	}
	return hosts, nil
}

// buildInventory runs the full fetch-and-group pipeline.
func buildInventory(ctx context.Context) (*inventory.Inventory, error) {
	client, cfg, err := common.NewNetBoxClient()
	if err != nil {
		return nil, err
	}

	hosts, err := fetchHosts(ctx, client)
	if err != nil {
		return nil, err
	}

	return inventory.Build(hosts, cfg.GroupBy), nil
}
