package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hotel-site/pkg/models"
	"hotel-site/pkg/services"
)

// newPublishCmd creates a new command for uploading gallery images to the bucket
func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish [dir]",
		Short: "Upload gallery images to the bucket",
		Long: `Upload the images of a directory laid out as <Category>/<Title>.jpg to BUCKET_NAME.
Each image becomes a gallery item of its category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, svc, err := setup()
			if err != nil {
				return err
			}
			if cfg.BucketName == "" {
				return errors.New("BUCKET_NAME environment variable not set")
			}
			return publishImages(cmd.Context(), cmd.OutOrStdout(), svc, args[0])
		},
	}
}

// newUnpublishCmd creates a new command for removing a gallery image from the bucket
func newUnpublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish [category] [title]",
		Short: "Remove a gallery image from the bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup()
			if err != nil {
				return err
			}
			if err := svc.Unpublish(cmd.Context(), models.Category(args[0]), args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s/%s\n", args[0], args[1])
			return nil
		},
	}
}

// publishImages uploads dir and reports the progress and outcome
func publishImages(ctx context.Context, w io.Writer, svc *services.Service, dir string) error {
	fmt.Fprintln(w, heading.Render("Publishing "+dir))

	res, err := svc.Publish(ctx, dir, func(step string, progress int) {
		fmt.Fprintf(w, "[%3d%%] %s\n", progress, step)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Published: %d\n", res.Published)
	fmt.Fprintf(w, "Skipped:   %d\n", res.Skipped)
	fmt.Fprintf(w, "Failed:    %d\n", res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d images failed to publish", res.Failed)
	}
	return nil
}
