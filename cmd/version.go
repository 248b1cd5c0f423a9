package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// This will be populated dynamically at build time
var version = "unknown"

// Version command for long form usage
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of potsite",
	Long:  `Print the version number of potsite`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

// Helper function for printing the version
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "potsite version: %s\n", version)
}

func init() {
	// Add the version command for long form (e.g., `potsite version`)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolP("version", "v", false, "Print the version number of potsite")
}
