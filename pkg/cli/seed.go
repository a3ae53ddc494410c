package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/cli/config"
	"github.com/sesmt-lab/psicorisk/pkg/utils/logging"
	"github.com/sesmt-lab/psicorisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var catalogPath string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the catalog TOML file",
			Required:    true,
			Sources:     cli.EnvVars("PSICORISK_CATALOG"),
			Destination: &catalogPath,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the questionnaire catalog into the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := config.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			logger := logging.Default()

			for _, severity := range catalog.SeverityModels() {
				if _, err := repo.Severity().Create(ctx, severity); err != nil {
					return goerr.Wrap(err, "failed to seed severity", goerr.V("severity_id", severity.ID))
				}
			}
			logger.Info("Seeded severities", "count", len(catalog.Severities))

			for _, risk := range catalog.RiskModels() {
				if _, err := repo.Risk().Create(ctx, risk); err != nil {
					return goerr.Wrap(err, "failed to seed risk", goerr.V("risk_id", risk.ID))
				}
			}
			logger.Info("Seeded risks", "count", len(catalog.Risks))

			forms, questions := catalog.FormModels()
			for _, form := range forms {
				if _, err := repo.Form().Create(ctx, form); err != nil {
					return goerr.Wrap(err, "failed to seed form", goerr.V("form_id", form.ID))
				}
			}
			for _, question := range questions {
				if _, err := repo.Question().Create(ctx, question); err != nil {
					return goerr.Wrap(err, "failed to seed question", goerr.V("question_id", question.ID))
				}
			}
			logger.Info("Seeded forms", "forms", len(forms), "questions", len(questions))

			return nil
		},
	}
}
