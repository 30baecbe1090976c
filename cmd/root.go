package cmd

import (
	"os"

	"filesbundler/pkg/logging"
	"filesbundler/pkg/rsp"
	"filesbundler/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "filesbundler",
	Short: "filesbundler is a CLI tool for bundling source files",
	Long: `filesbundler aggregates source files from a directory tree into a single
output file, filtered by programming language. Arguments of the form
@file are expanded from a response file, so a wizard-generated
response.rsp can replay a full invocation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		return logging.Setup(verbose, "filesbundler", version.Get().Version)
	},
	SilenceUsage: true,
}

// logger returns the process-wide logger, falling back to a no-op
// logger when commands run outside Execute (as in tests).
func logger() *zap.Logger {
	if logging.Logger == nil {
		return zap.NewNop()
	}
	return logging.Logger
}

// Execute expands response-file arguments and runs the root command.
func Execute() error {
	args, err := rsp.ExpandArgs(os.Args[1:])
	if err != nil {
		return err
	}
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
