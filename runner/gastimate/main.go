package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/gastimator/cmd"
)

var mainCmd = &cobra.Command{Use: "gastimate"}

func main() {
	mainCmd.AddCommand(cmd.ServerCmd())

	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
