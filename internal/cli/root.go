package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/files/filesystem"
)

var rootCmd = &cobra.Command{
	Use:   "traceschema",
	Short: "Trace object schema toolkit",
	Long: `traceschema reads, checks, and rewrites trace object schema documents.

A schema document is an XML <context> holding one <schema> per object type
of a debugger's trace model: which interfaces it implements, which child
elements and attributes it may hold, and which attribute names are aliases.

Configuration is read from --config, $TRACESCHEMA_CONFIG, ./traceschema.yaml,
or ~/.traceschema.yaml, in that order. A .env file in the working directory
is loaded first.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Malformed document
  21 - Required attribute missing from a document node
  22 - Warnings reported under --strict`,
	SilenceUsage: true,
}

// files is the provider used by every command. Tests replace it.
var files filesystem.Provider = filesystem.NewOSFileSystem()

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to a traceschema.yaml file")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
