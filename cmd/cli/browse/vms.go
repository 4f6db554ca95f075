package browse

import (
	"sort"

	"github.com/spf13/cobra"

	"towerbox/cmd/cli/common"
	"towerbox/pkg/inventory"
)

type vmsCommand struct {
	*common.Context

	// flags
	format string
}

func VMsCommand(ctx *common.Context) *cobra.Command {
	var cmd vmsCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "vms",
		Short:             "List NetBox virtual machines",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "table", "output format (table, json, yaml)")

	return cobraCmd
}

func (cmd *vmsCommand) run(cobraCmd *cobra.Command, _ []string) error {
	client, _, err := common.NewNetBoxClient()
	if err != nil {
		return err
	}

	stopProgress := common.StartProgressSpinner("Fetching virtual machines")
	vms, err := client.ListVirtualMachines(cobraCmd.Context())
	stopProgress()
	if err != nil {
		return err
	}

	sort.Slice(vms, func(i, j int) bool {
		return vms[i].Name < vms[j].Name
	})

	header := []string{"name", "site", "platform", "role", "status", "ip"}
	rows := make([][]string, 0, len(vms))
	for _, vm := range vms {
		host := inventory.FromVirtualMachine(vm)
		rows = append(rows, []string{
			host.Name, host.Site, host.Platform, host.Role, host.Status, host.Address,
		})
	}

	return printRecords(cmd.format, header, rows, vms)
}
