package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// measureModes contains valid --measure values for shell completion.
var measureModes = []string{"raw", "decoded"}

// completeMeasureModes provides shell completion for the --measure flag.
func completeMeasureModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range measureModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeInputFiles lets the shell complete dump files and directories.
func completeInputFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"sql", "txt"}, cobra.ShellCompDirectiveFilterFileExt
}
