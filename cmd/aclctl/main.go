// Command aclctl is a demonstration and debugging client for the acl
// package: it runs a full three-party issuance in one process, derives keys
// from seeds, and verifies standalone signatures.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "aclctl",
		Short: "Issue and verify anonymous-credential-light signatures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newKeygenCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newVerifyCmd())

	return root
}
