package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:   "intake",
		Short: "Validate and store uploaded files",
		Long: `Intake validates local files against the upload policy and stores them
in the content directory, the same way the upload service does.

Policy defaults come from the environment (UPLOAD_* variables, optionally
from a .env file) and can be overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", "Content directory (default UPLOAD_BASE_DIR)")
	root.PersistentFlags().Int64Var(&opts.maxSize, "max-size", 0, "Maximum size in bytes (default from environment)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Additional env file to load")

	root.AddCommand(
		fileCmd(&opts),
		imageCmd(&opts),
	)

	return root
}
