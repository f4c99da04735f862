// Command dehb-demo runs the canonical quadratic-function walkthrough
// through both the batch Run driver and the Ask/Tell surface and prints
// their trajectories side by side, proving they match.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dehb-demo",
		Short: "Run the quadratic-function DE walkthrough",
	}
	root.AddCommand(newRunCmd())
	return root
}
