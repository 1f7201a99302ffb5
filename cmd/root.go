package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "flatjson",
	Short: "Streaming FlatBuffers-to-JSON printer",
	Long: `flatjson renders FlatBuffers-encoded wire buffers as JSON without
building an intermediate tree, streaming output as it walks the buffer.`,
}

// Execute executes the root command.
func Execute() error {
	return RootCmd.Execute()
}

// ExecuteWithContext executes the root command with the given context.
func ExecuteWithContext(ctx context.Context) error {
	// Set the context for the command
	RootCmd.SetContext(ctx)
	return RootCmd.Execute()
}
