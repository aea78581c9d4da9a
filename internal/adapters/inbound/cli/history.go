package cli

import (
	"encoding/json"
	"fmt"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/history"
	"github.com/abdidvp/easydelivery/internal/adapters/outbound/tui"
	"github.com/abdidvp/easydelivery/internal/bootstrap"
	"github.com/spf13/cobra"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var (
		jsonOutput bool
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the label requests made from this workstation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig(bootstrap.Options{ConfigPath: *configPath, Dir: dir})
			if err != nil {
				return err
			}

			entries, err := history.New(cfg.Storage.HistoryPath()).Load()
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of the file store (overrides config)")
	return cmd
}
