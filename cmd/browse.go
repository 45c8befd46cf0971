package cmd

import (
	"github.com/spf13/cobra"

	"hotel-site/pkg/models"
	"hotel-site/pkg/preview"
)

// newBrowseCmd creates a new command for browsing the gallery in the terminal
func newBrowseCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the gallery in the terminal",
		Long:  `Browse the gallery with the same filter and lightbox navigation as the site.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup()
			if err != nil {
				return err
			}
			st, err := svc.NewGallery(cmd.Context(), models.Category(filter), "")
			if err != nil {
				return err
			}
			return preview.Run(cmd.Context(), st, svc.Catalog().Brand.Name)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(models.CategoryAll), "Initial gallery filter")

	return cmd
}
