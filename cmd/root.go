package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the cal-agent application
var rootCmd = &cobra.Command{
	Use:   "cal-agent",
	Short: "Calendar scheduling tools for AI assistants",
	Long: `cal-agent is an MCP (Model Context Protocol) server that exposes Google
Calendar to AI assistants: event creation and search, free/busy queries,
and an availability planner that computes bookable meeting slots within
working hours for a date range.

The conversational agent and chat UI live outside this binary; they call
in through the MCP tool surface.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "cal-agent version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
