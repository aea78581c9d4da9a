package cli

import (
	"fmt"
	"os"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "easydelivery",
		Short:         "Fetch Easy Delivery shipping labels",
		Long:          "easydelivery sends pickings to the Easy Delivery API and stores the returned PDF or ZPL labels as attachments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (defaults to ./.easydelivery.yaml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newLabelCmd(&configPath))
	cmd.AddCommand(newPayloadCmd(&configPath))
	cmd.AddCommand(newCarriersCmd())
	cmd.AddCommand(newAttachmentsCmd(&configPath))
	cmd.AddCommand(newHistoryCmd(&configPath))
	cmd.AddCommand(newMCPCmd(&configPath))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and prints a failing command's error to stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
	}
	return err
}
