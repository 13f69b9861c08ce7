package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eescheck",
		Short: "Validate TOML and YAML files",
		// failures are reported by errors.Main as a cause chain
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newCheckCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "eescheck v%s\n", Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		},
	}
}

// Execute runs the command line of the process.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}
