package cli

import (
	"encoding/json"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/picking"
	"github.com/abdidvp/easydelivery/internal/bootstrap"
	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/spf13/cobra"
)

func newPayloadCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "payload <picking-file>",
		Short: "Print the order payload of a picking",
		Long:  "Build the JSON body that would be sent to the Easy Delivery API, without calling it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig(bootstrap.Options{ConfigPath: *configPath})
			if err != nil {
				return err
			}

			p, err := picking.New().Load(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(domain.BuildShipmentRequest(p, cfg.Company))
		},
	}
}
