package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cal-agent version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cal-agent version %s\n", version)
		},
	}
}
