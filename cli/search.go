package cli

import (
	"document-catalog/core"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Fixtures string
	Titles   []string
	Contents []string
	Authors  []string
	From     string
	To       string
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search documents loaded from a fixture file",
		Long: `Search documents loaded from a fixture file.

Repeated --title and --contents flags must all match; both are matched against
the document title. Repeated --author flags match any of the given ids.
--from and --to are exclusive RFC 3339 bounds on the creation time.

Example:
  catalog search --fixtures docs.yaml --title Java --author A1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Fixtures, "fixtures", "", "YAML or JSON file with documents to load")
	cmd.Flags().StringArrayVar(&opts.Titles, "title", nil, "substring the title must contain (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Contents, "contents", nil, "substring the title must contain (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Authors, "author", nil, "author id to match (repeatable)")
	cmd.Flags().StringVar(&opts.From, "from", "", "only documents created after this RFC 3339 time")
	cmd.Flags().StringVar(&opts.To, "to", "", "only documents created before this RFC 3339 time")
	_ = cmd.MarkFlagRequired("fixtures")

	return cmd
}

func runSearch(opts *SearchOptions, cmd *cobra.Command) error {
	request, err := opts.request()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid search flags", err)
	}

	store, err := openStore(opts.RootOptions, opts.Fixtures)
	if err != nil {
		return err
	}

	result := store.Search(request)
	sortDocuments(result)
	return writeDocuments(cmd.OutOrStdout(), opts.Format, result)
}

func (o *SearchOptions) request() (core.SearchRequest, error) {
	request := core.SearchRequest{
		TitlePrefixes:    o.Titles,
		ContainsContents: o.Contents,
		AuthorIDs:        o.Authors,
	}

	var err error
	if request.CreatedFrom, err = parseBound("from", o.From); err != nil {
		return core.SearchRequest{}, err
	}
	if request.CreatedTo, err = parseBound("to", o.To); err != nil {
		return core.SearchRequest{}, err
	}
	return request, nil
}

func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &t, nil
}
