package cli

import (
	"encoding/json"
	"fmt"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/picking"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/tui"
	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/spf13/cobra"
)

func newCarriersCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "carriers",
		Short: "List the selectable delivery types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := domain.DeliveryTypes()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(options)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDeliveryTypes(options))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.AddCommand(newCarriersReleaseCmd())
	return cmd
}

func newCarriersReleaseCmd() *cobra.Command {
	var (
		jsonOutput bool
		write      bool
	)

	cmd := &cobra.Command{
		Use:   "release <carriers-file>",
		Short: "Turn Easy Delivery carriers into free fixed-price carriers",
		Long: "Rewrite every carrier using the easy_delivery delivery type as a fixed-price carrier " +
			"at price 0, as required when the Easy Delivery option is withdrawn.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := picking.New()

			carriers, err := loader.LoadCarriers(args[0])
			if err != nil {
				return err
			}
			released := domain.ReleaseEasyDelivery(carriers)

			if write {
				if err := loader.SaveCarriers(args[0], released); err != nil {
					return err
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(released)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCarriers(released))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&write, "write", false, "Write the released carriers back to the file")
	return cmd
}
