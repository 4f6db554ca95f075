package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"towerbox/cmd/cli/common"
)

type hostCommand struct {
	*common.Context
}

func HostCommand(ctx *common.Context) *cobra.Command {
	var cmd hostCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "host <name>",
		Short:             "Print hostvars for a single host",
		GroupID:           groupID,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *hostCommand) run(cobraCmd *cobra.Command, args []string) error {
	return PrintHost(cobraCmd.Context(), args[0])
}

// PrintHost writes the hostvars document for one host to stdout, or an empty
// object when the host is unknown. That is what Ansible expects from a
// `--host` query; it also backs the root `--host` flag.
func PrintHost(ctx context.Context, name string) error {
	inv, err := buildInventory(ctx)
	if err != nil {
		return err
	}

	out, err := json.Marshal(inv.HostVars(name))
	if err != nil {
		return fmt.Errorf("error serializing hostvars: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
