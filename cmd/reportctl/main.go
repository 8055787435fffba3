// Command reportctl exports community reports from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "reportctl",
		Short:         "Export operational and payments reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(NewExportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
