package cmd

import (
	"github.com/spf13/cobra"

	"github.com/framedcoin/framedcoin/app"
)

func exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the committed state as a genesis file",
		Long:  "Export the committed state as a genesis file. Without --output the genesis is printed to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			return withNode(cmd, func(node *app.App) error {
				gs, err := node.ExportGenesis()
				if err != nil {
					return err
				}
				if output == "" {
					return printJSON(cmd, gs)
				}
				return app.WriteGenesisFile(output, gs)
			})
		},
	}
	cmd.Flags().String("output", "", "Write the genesis to this file")
	return cmd
}
