package cmd

import (
	"fmt"

	"github.com/cnopslabs/potsite/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display potsite configuration",
	Long:  "Display the resolved site directory, template and output paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		paths := utils.ResolvePaths()

		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			configFile = "none"
		}

		fmt.Fprint(w, "Site directory: ")
		utils.Yellow.Fprintln(w, paths.SiteDir)

		fmt.Fprint(w, "Template: ")
		utils.Yellow.Fprintln(w, paths.Template)

		fmt.Fprint(w, "Output: ")
		utils.Yellow.Fprintln(w, paths.Output)

		fmt.Fprint(w, "Config file: ")
		utils.Yellow.Fprintln(w, configFile)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
