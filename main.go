package main

import (
	"os"

	"github.com/openbehavior/fanout/cmd"
	"github.com/openbehavior/fanout/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
