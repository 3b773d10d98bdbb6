// Version command for the conveyor CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/conveyor"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the conveyor version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("conveyor", conveyor.Version)
	},
}
