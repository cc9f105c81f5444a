// Package cmd contains the fanout CLI commands.
package cmd

import (
	"github.com/openbehavior/fanout/cmd/prep"
	"github.com/openbehavior/fanout/cmd/sweep"
	"github.com/openbehavior/fanout/cmd/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "fanout",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(prep.NewCommand())
	RootCmd.AddCommand(sweep.NewCommand())
	RootCmd.AddCommand(templateCmd)
	RootCmd.AddCommand(version.Cmd)
}
