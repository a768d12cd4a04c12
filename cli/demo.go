package cli

import (
	"document-catalog/core"
	"time"

	"github.com/spf13/cobra"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Save one document into a fresh store and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rootOpts, "")
			if err != nil {
				return err
			}

			saved := store.Save(core.Document{
				Title:   "t1",
				Content: "c1",
				Author:  core.Author{ID: "i1", Name: "n1"},
				Created: time.Now().UTC(),
			})
			return writeDocument(cmd.OutOrStdout(), rootOpts.Format, saved)
		},
	}
}
