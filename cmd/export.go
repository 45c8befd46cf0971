package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hotel-site/pkg/models"
	"hotel-site/pkg/services"
)

type exportData struct {
	Categories []models.Category    `json:"categories" yaml:"categories"`
	Gallery    []models.MediaItem   `json:"gallery" yaml:"gallery"`
	Counts     map[string]int       `json:"counts" yaml:"counts"`
	Brand      models.Brand         `json:"brand" yaml:"brand"`
	Offers     []models.Offer       `json:"offers" yaml:"offers"`
	Places     []models.Destination `json:"destinations" yaml:"destinations"`
}

// newExportCmd creates a new command for exporting gallery data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "export [format]",
		Short:     "Export site data",
		Long:      `Export the catalog and gallery in the specified format. Supported formats: json, yaml.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"json", "yaml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup()
			if err != nil {
				return err
			}

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			return exportSite(cmd.Context(), cmd.OutOrStdout(), svc, format)
		},
	}
}

// exportSite writes the site data in the specified format
func exportSite(ctx context.Context, w io.Writer, svc *services.Service, format string) error {
	cat := svc.Catalog()
	data := exportData{
		Categories: svc.Categories(),
		Gallery:    svc.Items(ctx),
		Counts:     make(map[string]int),
		Brand:      cat.Brand,
		Offers:     cat.Offers,
		Places:     cat.Destinations,
	}
	for _, c := range data.Categories {
		items, err := svc.FilteredItems(ctx, c)
		if err != nil {
			return err
		}
		data.Counts[string(c)] = len(items)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format: %s (supported: json, yaml)", format)
}
