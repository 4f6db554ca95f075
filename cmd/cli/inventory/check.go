package inventory

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"towerbox/cmd/cli/common"
	"towerbox/pkg/netbox"
)

type checkCommand struct {
	*common.Context
}

func CheckCommand(ctx *common.Context) *cobra.Command {
	var cmd checkCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "check",
		Short:             "Check connectivity to NetBox",
		Long:              "Verify that the configured NetBox instance is reachable and the token is accepted",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *checkCommand) run(cobraCmd *cobra.Command, _ []string) error {
	client, cfg, err := common.NewNetBoxClient()
	if err != nil {
		return err
	}

	stopProgress := common.StartProgressSpinner("Connecting to NetBox")
	err = netbox.Handshake(cfg.HostURL)
	stopProgress()
	if err != nil {
		return err
	}

	stopProgress = common.StartProgressSpinner("Querying NetBox status")
	status, err := client.Status(cobraCmd.Context())
	stopProgress()
	if err != nil {
		return fmt.Errorf("error querying NetBox status: %w", err)
	}

	ok := "ok"
	if common.IsTerminalOutput() {
		ok = color.GreenString(ok)
	}
	fmt.Printf("%s: NetBox %s at %s\n", ok, status.NetBoxVersion, client.BaseURL())

	return nil
}
