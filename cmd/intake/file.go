package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/intake/pkg/sanitizer"
)

func fileCmd(opts *globalOptions) *cobra.Command {
	var (
		types []string
		slug  bool
	)

	cmd := &cobra.Command{
		Use:   "file <path>...",
		Short: "Store files verbatim",
		Long: `Store files byte for byte after checking extension and size.

The stored name is the file's base name, unchanged unless --slug is given.

Examples:
  intake file report.pdf
  intake file --types=csv,txt --slug "Q1 Sales (final).csv"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			allowed := a.cfg.Upload.AllowedTypes
			if len(types) > 0 {
				allowed = types
			}
			maxSize := opts.maxSizeOr(a.cfg.Upload.MaxSize)

			name := sanitizer.BaseName
			if slug {
				name = sanitizer.Compose(sanitizer.BaseName, sanitizer.Name)
			}

			return a.run(cmd.Context(), cmd.OutOrStdout(), args, name,
				func(ctx context.Context, n string, data []byte) (string, error) {
					return a.svc.SaveFile(ctx, a.cfg.Upload.BaseDir, n, data, allowed, maxSize)
				})
		},
	}

	cmd.Flags().StringSliceVar(&types, "types", nil, "Allowed extensions (default UPLOAD_ALLOWED_TYPES)")
	cmd.Flags().BoolVar(&slug, "slug", false, "Sanitize the stored file name")

	return cmd
}
