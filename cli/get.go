package cli

import (
	"document-catalog/core"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var fixtures string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print one document loaded from a fixture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rootOpts, fixtures)
			if err != nil {
				return err
			}

			document, ok := store.FindByID(args[0])
			if !ok {
				return WrapExitError(ExitNotFound, args[0], core.ErrNotFound)
			}
			return writeDocument(cmd.OutOrStdout(), rootOpts.Format, document)
		},
	}

	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML or JSON file with documents to load")
	_ = cmd.MarkFlagRequired("fixtures")

	return cmd
}
