package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/intake/pkg/sanitizer"
)

func imageCmd(opts *globalOptions) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "image <path>...",
		Short: "Resize and re-encode images",
		Long: `Decode images, resize them and store them re-encoded in the format named
by their extension (png, jpg, jpeg or gif). Stored names are always slugs.

  --width only    shrink to that width, keeping the aspect ratio
  --height only   shrink to that height, keeping the aspect ratio
  both            resize to exactly width x height
  neither         keep the original size

Examples:
  intake image --width=800 "Foto Estate.JPG"
  intake image --width=256 --height=256 avatar.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			w, h := a.cfg.Upload.ImageWidth, a.cfg.Upload.ImageHeight
			if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
				w, h = width, height
			}
			maxSize := opts.maxSizeOr(a.cfg.Upload.ImageMaxSize)

			return a.run(cmd.Context(), cmd.OutOrStdout(), args, sanitizer.BaseName,
				func(ctx context.Context, n string, data []byte) (string, error) {
					return a.svc.SaveImage(ctx, a.cfg.Upload.BaseDir, n, data, maxSize, w, h)
				})
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Target width in pixels (default UPLOAD_IMAGE_WIDTH)")
	cmd.Flags().IntVar(&height, "height", 0, "Target height in pixels (default UPLOAD_IMAGE_HEIGHT)")

	return cmd
}
