package cmd

import (
	"fmt"

	"github.com/openbehavior/fanout/config"
	"github.com/spf13/cobra"
)

// templateCmd prints the default job template, as a starting point for a
// site-specific one.
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the default job template.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(config.DefaultJobTemplate)
	},
}
