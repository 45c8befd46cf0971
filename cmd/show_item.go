package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
	"hotel-site/pkg/services"
)

// newShowItemCmd creates a new command for walking the lightbox from an item
func newShowItemCmd() *cobra.Command {
	var (
		filter string
		steps  []string
	)

	cmd := &cobra.Command{
		Use:   "show-item [title]",
		Short: "Open a gallery item in the lightbox",
		Long: `Open a gallery item in the lightbox and apply each --step in order. A step is an
action (next, prev, close) or a key (ArrowRight, ArrowLeft, Escape).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup()
			if err != nil {
				return err
			}
			return showItem(cmd.Context(), cmd.OutOrStdout(), svc, models.Category(filter), args[0], steps)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(models.CategoryAll), "Active gallery filter")
	cmd.Flags().StringSliceVarP(&steps, "step", "s", nil, "Lightbox action or key to apply (repeatable)")

	return cmd
}

// showItem opens title and prints the lightbox after every step
func showItem(ctx context.Context, w io.Writer, svc *services.Service, filter models.Category, title string, steps []string) error {
	st, err := svc.NewGallery(ctx, filter, title)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, heading.Render(fmt.Sprintf("Lightbox: %s", st.ActiveFilter())))
	printLightbox(w, "open", st)

	for _, step := range steps {
		if action, err := gallery.ParseAction(step); err == nil {
			st.Apply(action)
		} else if _, ok := st.HandleKey(step); !ok {
			return fmt.Errorf("unknown step %q", step)
		}
		printLightbox(w, step, st)
		if !st.IsOpen() {
			break
		}
	}
	return nil
}

func printLightbox(w io.Writer, step string, st *gallery.State) {
	item, ok := st.Current()
	if !ok {
		fmt.Fprintf(w, "%-10s closed\n", step)
		return
	}
	pos, total, _ := st.Position()
	fmt.Fprintf(w, "%-10s %d of %d  %s\n", step, pos, total, item.Title)
}
