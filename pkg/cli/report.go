package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/cli/config"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/usecase"
	"github.com/sesmt-lab/psicorisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var companyID string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "company-id",
			Usage:       "Company to report on",
			Required:    true,
			Sources:     cli.EnvVars("PSICORISK_COMPANY_ID"),
			Destination: &companyID,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Print the risk exposure report of a company",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)
			report, err := uc.Report.BuildRiskReport(ctx, types.CompanyID(companyID))
			if err != nil {
				return goerr.Wrap(err, "failed to build risk report")
			}

			title := color.New(color.FgCyan, color.Bold)
			title.Println("Risk exposure report")

			if report.IsReference() {
				warn := color.New(color.FgYellow)
				warn.Println("No recorded answers yet: showing the reference dataset")
			}

			for _, entry := range report.Entries {
				color.New(color.Bold).Printf("\n%s\n", entry.Title)
				if entry.Description != "" {
					color.New(color.Faint).Printf("  %s\n", entry.Description)
				}

				printField("Probability", entry.Probability)
				printField("Severity", entry.Severity)
				printField("Roles", strings.Join(entry.Roles, ", "))
				printField("Status", string(entry.Status))
				if entry.ControlMeasures != "" {
					printField("Control measures", entry.ControlMeasures)
				}
				if entry.Deadline != "" {
					printField("Deadline", entry.Deadline)
				}
				if entry.Responsible != "" {
					printField("Responsible", entry.Responsible)
				}
			}

			return nil
		},
	}
}

func printField(name, value string) {
	color.New(color.FgGreen).Printf("  %-17s", name+":")
	fmt.Printf(" %s\n", value)
}
