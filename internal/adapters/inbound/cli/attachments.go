package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/tui"
	"github.com/abdidvp/easydelivery/internal/bootstrap"
	"github.com/spf13/cobra"
)

func newAttachmentsCmd(configPath *string) *cobra.Command {
	var (
		store      storeFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "attachments <picking-id>",
		Short: "List the label attachments of a picking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid picking id %q", args[0])
			}

			rt, err := bootstrap.New(cmd.Context(), store.options(cmd, *configPath))
			if err != nil {
				return err
			}
			defer rt.Close()

			attachments, err := rt.Service.Attachments(cmd.Context(), id)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(attachments)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAttachments(id, attachments))
			return nil
		},
	}

	store.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
