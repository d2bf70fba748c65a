package commands

import (
	"github.com/deppfellow/docgen/internal/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// Execute runs the docgen command tree.
func Execute() error {
	root := &cobra.Command{
		Use:           "docgen",
		Short:         "Render invoices and travel vouchers as PDFs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.AddCommand(serveCmd(), renderCmd())
	return root.Execute()
}
