package cli

import (
	"encoding/json"
	"fmt"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/tui"
	"github.com/abdidvp/easydelivery/internal/application"
	"github.com/abdidvp/easydelivery/internal/bootstrap"
	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/spf13/cobra"
)

// storeFlags are the attachment store overrides shared by several commands.
type storeFlags struct {
	driver string
	dir    string
	dsn    string
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.driver, "store", "", "Attachment store: file or postgres (overrides config)")
	cmd.Flags().StringVar(&f.dir, "dir", "", "Directory of the file store (overrides config)")
	cmd.Flags().StringVar(&f.dsn, "dsn", "", "PostgreSQL DSN of the postgres store (overrides config)")
}

func (f *storeFlags) options(cmd *cobra.Command, configPath string) bootstrap.Options {
	return bootstrap.Options{
		ConfigPath: configPath,
		Driver:     domain.StorageDriver(f.driver),
		Dir:        f.dir,
		DSN:        f.dsn,
		LogOutput:  cmd.ErrOrStderr(),
	}
}

func newLabelCmd(configPath *string) *cobra.Command {
	var (
		store      storeFlags
		jsonOutput bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "label <picking-file>",
		Short: "Fetch the shipping label of a picking",
		Long: "Send the picking to the Easy Delivery API and attach the returned labels to it. " +
			"Every run creates a new set of attachments.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap.New(cmd.Context(), store.options(cmd, *configPath))
			if err != nil {
				return err
			}
			defer rt.Close()

			p, err := rt.Loader.Load(args[0])
			if err != nil {
				return err
			}
			if !force {
				if err := application.EnsureLabelCarrier(p); err != nil {
					return fmt.Errorf("%w (use --force to send it anyway)", err)
				}
			}

			res, err := rt.GenerateLabel(cmd.Context(), p)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLabelResult(res))
			return nil
		},
	}

	store.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the created attachments as JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Request a label even if the carrier is not Easy Delivery")

	return cmd
}
