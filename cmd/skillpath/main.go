// skillpath - conversational learning-path coach server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skillpath",
		Short: "Chat-driven learning roadmap generator",
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return root
}
