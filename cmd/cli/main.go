package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"towerbox/cmd/cli/browse"
	"towerbox/cmd/cli/common"
	"towerbox/cmd/cli/inventory"
)

func main() {
	ctx := &common.Context{}

	// Flags of the inventory-script contract. AWX/Tower invoke the script
	// as `towerbox --list` or `towerbox --host <name>`.
	var listFlag bool
	var hostFlag string

	// rootCmd is the base command
	// It gets populated with subcommands
	rootCmd := &cobra.Command{
		SilenceUsage: true,
		Long: "towerbox builds an Ansible dynamic inventory from NetBox.\n\n" +
			"Devices and virtual machines are grouped by their site and platform,\n" +
			"and serialized in the inventory-script JSON format that AWX/Tower\n" +
			"custom inventory scripts use.\n\n" +
			"Set NETBOX_HOST_URL and NETBOX_AUTH_TOKEN according to your NetBox setup.",
		PersistentPreRunE: persistentPreRunE,
		Use:               "towerbox",
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case listFlag:
				return inventory.PrintList(cmd.Context(), false)
			case hostFlag != "":
				return inventory.PrintHost(cmd.Context(), hostFlag)
			default:
				return cmd.Help()
			}
		},
	}

	rootCmd.Flags().BoolVar(&listFlag, "list", false, "Print the full inventory document")
	rootCmd.Flags().StringVar(&hostFlag, "host", "", "Print hostvars for a single host")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable verbose logging")

	// Disable command sorting to keep commands sorted as added below
	cobra.EnableCommandSorting = false

	rootCmd.AddGroup(inventory.Group("Inventory Commands:"))
	rootCmd.AddCommand(
		inventory.ListCommand(ctx),
		inventory.HostCommand(ctx),
		inventory.CheckCommand(ctx),
	)

	rootCmd.AddGroup(browse.Group("Browse Commands:"))
	rootCmd.AddCommand(
		browse.DevicesCommand(ctx),
		browse.VMsCommand(ctx),
	)

	// disable logging timestamps
	log.SetFlags(0)

	// Hide the 'completion' command from help text
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// get value of verbose flag
	verbose := cmd.Flags().Lookup("verbose").Value.String() == "true"
	if verbose {
		log.Println("Verbose output enabled globally.")
		return os.Setenv("VERBOSE", "true")
	}
	return nil
}
