package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cnopslabs/potsite/internal/projection"
	"github.com/cnopslabs/potsite/internal/site"
	"github.com/cnopslabs/potsite/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usageLine = "potsite <day> <pot> [totalDays]"

// Filesystem used by the build, swapped out in tests
var siteFs = afero.NewOsFs()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   usageLine,
	Short: "Generate the pot tracker page from its HTML template",
	Long: `Generate the pot tracker page from its HTML template.

The template's {{DAY}}, {{TOTAL_DAYS}}, {{CURRENT_POT}}, {{FINAL_SUCCESS}},
{{FINAL_FAIL}} and {{UPDATED_AT}} placeholders are filled in and the result
is written next to it. totalDays defaults to 365.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			printVersion(cmd.OutOrStdout())
			return nil
		}

		inputs, err := projection.ParseArgs(args)
		if err != nil {
			return err
		}

		paths := utils.ResolvePaths()
		builder := &site.Builder{
			Fs:           siteFs,
			TemplatePath: paths.Template,
			OutputPath:   paths.Output,
			Logger:       utils.Logger,
		}

		p := projection.Compute(inputs)
		result, err := builder.Build(p)
		if err != nil {
			return err
		}

		utils.Logger.Debug("Page generated", "Output", result.OutputPath, "RemainingDays", p.RemainingDays)
		printSummary(cmd.OutOrStdout(), result)
		return nil
	},
}

// Execute runs the CLI and exits non-zero on any failure
func Execute() {
	os.Exit(ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr))
}

// ExecuteArgs runs the CLI with the given arguments and returns the process exit code
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(protectNegativeNumbers(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// protectNegativeNumbers ends flag parsing before the first dash-prefixed value
// that is not a known flag, so `potsite -1 100` or `potsite 1 -1.5` reach
// validation instead of failing as unknown flags
func protectNegativeNumbers(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if isFlag(arg) {
			continue
		}
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			protected := make([]string, 0, len(args)+1)
			protected = append(protected, args[:i]...)
			protected = append(protected, "--")
			return append(protected, args[i:]...)
		}
	}
	return args
}

// isFlag reports whether arg names a flag of the root command or any subcommand
func isFlag(arg string) bool {
	if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
		return false
	}
	if strings.HasPrefix(arg, "--") {
		return true
	}

	shorthand := arg[1:2]
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.InitDefaultHelpFlag()
		if c.Flags().ShorthandLookup(shorthand) != nil || c.PersistentFlags().ShorthandLookup(shorthand) != nil {
			return true
		}
	}
	return false
}

func loadConfig(cmd *cobra.Command, args []string) error {
	flagConfigFile, _ := cmd.Flags().GetString("config")
	return utils.ConfigInit(flagConfigFile)
}

func printSummary(w io.Writer, result site.Result) {
	v := result.Values
	utils.Green.Fprintf(w, "Generated %s\n", result.OutputPath)
	fmt.Fprintf(w, "  Day: %s/%s\n", v[site.KeyDay], v[site.KeyTotalDays])
	fmt.Fprintf(w, "  Current pot: %s\n", v[site.KeyCurrentPot])
	fmt.Fprintf(w, "  Final (success): %s\n", v[site.KeyFinalSuccess])
	fmt.Fprintf(w, "  Final (fail): %s\n", v[site.KeyFinalFail])
}

// reportError writes diagnostics for each failure kind to the error stream
func reportError(w io.Writer, err error) {
	var usageErr *projection.UsageError
	var validationErr *projection.ValidationError
	var ioErr *site.IOError

	switch {
	case errors.As(err, &usageErr):
		utils.Red.Fprintln(w, "Usage: "+usageLine)
		fmt.Fprintln(w, usageErr.Error())
	case errors.As(err, &validationErr):
		utils.Red.Fprintln(w, "Validation errors:")
		for _, problem := range validationErr.Problems {
			fmt.Fprintf(w, "  - %s\n", problem)
		}
	case errors.As(err, &ioErr):
		utils.Red.Fprintln(w, ioErr.Error())
	default:
		utils.Red.Fprintln(w, "Error: "+err.Error())
	}
}

func init() {
	utils.ConfigDefaults()

	// Site directory, template and output can also come from POTSITE_* env vars or the config file
	rootCmd.PersistentFlags().StringP("site-dir", "d", "site", "Directory holding the template and the generated page")
	rootCmd.PersistentFlags().StringP("template", "t", "template.html", "Template file, relative to the site directory")
	rootCmd.PersistentFlags().StringP("output", "o", "index.html", "Output file, relative to the site directory")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is .potsite.yaml in the site directory)")

	viper.BindPFlag(utils.KeySiteDir, rootCmd.PersistentFlags().Lookup("site-dir"))
	viper.BindPFlag(utils.KeyTemplate, rootCmd.PersistentFlags().Lookup("template"))
	viper.BindPFlag(utils.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
}
