package cmd

import (
	"fmt"
	"io"

	"github.com/cnopslabs/potsite/internal/money"
	"github.com/cnopslabs/potsite/internal/projection"
	"github.com/cnopslabs/potsite/internal/utils"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type scheduleRow struct {
	Day       int64  `yaml:"day"`
	Remaining int64  `yaml:"remaining"`
	Success   string `yaml:"success"`
	Fail      string `yaml:"fail"`
}

type projectReport struct {
	projection.Inputs `yaml:",inline"`
	RemainingDays     int64         `yaml:"remaining_days"`
	CurrentPot        string        `yaml:"current_pot"`
	FinalSuccess      string        `yaml:"final_success"`
	FinalFail         string        `yaml:"final_fail"`
	Schedule          []scheduleRow `yaml:"schedule"`
}

var projectCmd = &cobra.Command{
	Use:   "project <day> <pot> [totalDays]",
	Short: "Print the projections and a day by day schedule without writing the page",
	Long:  "Print the projections and a day by day schedule without writing the page",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flagLimit, _ := cmd.Flags().GetInt("limit")
		flagFormat, _ := cmd.Flags().GetString("format")

		inputs, err := projection.ParseArgs(args)
		if err != nil {
			return err
		}

		report, err := buildReport(inputs, flagLimit)
		if err != nil {
			return err
		}
		utils.Logger.Debug("Projection report", "Rows", len(report.Schedule), "Format", flagFormat)

		switch flagFormat {
		case "table":
			printReportTable(cmd.OutOrStdout(), report)
		case "yaml":
			out, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
			cmd.OutOrStdout().Write(out)
		default:
			return fmt.Errorf("unknown format %q, expected table or yaml", flagFormat)
		}

		return nil
	},
}

func buildReport(inputs projection.Inputs, limit int) (projectReport, error) {
	steps, err := projection.Schedule(inputs, limit)
	if err != nil {
		return projectReport{}, err
	}

	p := projection.Compute(inputs)

	report := projectReport{
		Inputs:        inputs,
		RemainingDays: p.RemainingDays,
		CurrentPot:    money.FormatInt(p.Pot),
		FinalSuccess:  money.Format(p.FinalSuccess),
		FinalFail:     money.Format(p.FinalFail),
	}

	for _, step := range steps {
		report.Schedule = append(report.Schedule, scheduleRow{
			Day:       step.Day,
			Remaining: step.Remaining,
			Success:   money.Format(step.Success),
			Fail:      money.Format(step.Fail),
		})
	}

	return report, nil
}

func printReportTable(w io.Writer, report projectReport) {
	utils.FaintMagenta.Fprintf(w, "Day %d/%d, %d remaining\n", report.Day, report.TotalDays, report.RemainingDays)
	fmt.Fprint(w, "Current pot: ")
	utils.Yellow.Fprintln(w, report.CurrentPot)
	fmt.Fprint(w, "Final (success): ")
	utils.Yellow.Fprintln(w, report.FinalSuccess)
	fmt.Fprint(w, "Final (fail): ")
	utils.Yellow.Fprintln(w, report.FinalFail)
	fmt.Fprintln(w)

	tbl := table.New("DAY", "REMAINING", "SUCCESS", "FAIL").WithWriter(w)
	tbl.WithHeaderFormatter(utils.HeaderFmt).WithFirstColumnFormatter(utils.ColumnFmt)

	for _, row := range report.Schedule {
		tbl.AddRow(row.Day, row.Remaining, row.Success, row.Fail)
	}

	tbl.Print()
}

func init() {
	rootCmd.AddCommand(projectCmd)

	// Local flags only exposed to project command
	projectCmd.Flags().IntP("limit", "l", 10, "Number of days to show in the schedule, 0 for all (at most 10000)")
	projectCmd.Flags().StringP("format", "f", "table", "Output format: table or yaml")
}
