package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fixinsert/internal/docs"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Print the tool's documentation as markdown",
	Long: `Doc prints fixinsert's own documentation (overview, usage and examples)
as markdown on stdout, under a "# <title>" heading.

Examples:
  fixinsert doc > README.md
  fixinsert doc --title "Column sizing" --toc`,
	Args: cobra.NoArgs,
	RunE: runDoc,
}

var docFlags struct {
	title string
	toc   bool
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().StringVar(&docFlags.title, "title", "fixinsert", "Top-level heading of the document")
	docCmd.Flags().BoolVar(&docFlags.toc, "toc", false, "Include a table of contents")
}

func runDoc(cmd *cobra.Command, args []string) error {
	_, err := io.WriteString(cmd.OutOrStdout(), docs.Render(docFlags.title, docFlags.toc))
	return err
}
