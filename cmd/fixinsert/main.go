// Command fixinsert reports the longest value per column in SQL insert dumps.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/fixinsert/internal/cli"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

func main() {
	// Exit 3 on panic so scripts can tell a crash apart from a finding:
	// 13 for a malformed statement, 14 for a column that is too narrow.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fixinsert: internal error: %v\n%s", r, debug.Stack())
			os.Exit(fixinsert.ExitPanic)
		}
	}()

	err := cli.Execute()
	os.Exit(fixinsert.ExitCodeForError(err))
}
