package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	"github.com/kit-coca/coca-cli/internal/domain"
)

func newTagCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tag",
		Short: "List the tags groups can be labelled with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Tags are public; no session required.
			var tags []domain.Tag
			if err := fetchInto(cmd.Context(), app, api.TagListRequest(), &tags); err != nil {
				return fmt.Errorf("fetch tags: %w", err)
			}

			for _, tag := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", tag.ID, tag.Field, tag.Name)
			}
			return nil
		},
	}
}
