package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mofmt/internal/manifest"
)

var syncCmd = &cobra.Command{
	Use:   "sync <source.json> <destination.json>",
	Short: "Propagate shared metadata between library manifests",
	Args:  cobra.ExactArgs(2),
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	changed, err := manifest.Sync(args[0], args[1])
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	if changed {
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", args[1])
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "manifests already in sync")
	}
	return nil
}
