package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// RequireInputFiles validates that at least one file or directory argument
// is provided. The plain "Please specify a file name." line goes to stdout;
// the returned error carries usage and an example.
func RequireInputFiles(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Please specify a file name.")
	return fmt.Errorf(`%w

Usage: %s

Example:
  %s dump.sql`, fixinsert.ErrNoInputFiles, cmd.UseLine(), cmd.CommandPath())
}
