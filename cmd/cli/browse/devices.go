package browse

import (
	"sort"

	"github.com/spf13/cobra"

	"towerbox/cmd/cli/common"
	"towerbox/pkg/inventory"
)

type devicesCommand struct {
	*common.Context

	// flags
	format string
}

func DevicesCommand(ctx *common.Context) *cobra.Command {
	var cmd devicesCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "devices",
		Short:             "List NetBox devices",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "table", "output format (table, json, yaml)")

	return cobraCmd
}

func (cmd *devicesCommand) run(cobraCmd *cobra.Command, _ []string) error {
	client, _, err := common.NewNetBoxClient()
	if err != nil {
		return err
	}

	stopProgress := common.StartProgressSpinner("Fetching devices")
	devices, err := client.ListDevices(cobraCmd.Context())
	stopProgress()
	if err != nil {
		return err
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Name < devices[j].Name
	})

	header := []string{"name", "site", "platform", "role", "status", "ip"}
	rows := make([][]string, 0, len(devices))
	for _, device := range devices {
		host := inventory.FromDevice(device)
		rows = append(rows, []string{
			host.Name, host.Site, host.Platform, host.Role, host.Status, host.Address,
		})
	}

	return printRecords(cmd.format, header, rows, devices)
}
