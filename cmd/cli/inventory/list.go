package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"towerbox/cmd/cli/common"
)

type listCommand struct {
	*common.Context

	// flags
	pretty bool
}

func ListCommand(ctx *common.Context) *cobra.Command {
	var cmd listCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "list",
		Short:             "Print the inventory document",
		Long:              "Fetch devices and virtual machines from NetBox and print the dynamic inventory JSON document",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().BoolVar(&cmd.pretty, "pretty", false, "indent the JSON output")

	return cobraCmd
}

func (cmd *listCommand) run(cobraCmd *cobra.Command, _ []string) error {
	return PrintList(cobraCmd.Context(), cmd.pretty)
}

// PrintList writes the full inventory document to stdout. It also backs the
// root `--list` flag, which is how the controller invokes the script.
func PrintList(ctx context.Context, pretty bool) error {
	inv, err := buildInventory(ctx)
	if err != nil {
		return err
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(inv, "", "  ")
	} else {
		out, err = json.Marshal(inv)
	}
	if err != nil {
		return fmt.Errorf("error serializing inventory: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
