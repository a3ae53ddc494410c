package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sesmt-lab/psicorisk/pkg/cli/config"
)

const validCatalog = `
[[severity]]
id = "sev-harmful"
label = "Harmful"
rank = 2

[[risk]]
id = "work-overload"
title = "Work overload"
description = "Sustained workload above the team's capacity"
severity = "sev-harmful"

[[form]]
id = "assessment"
title = "Psychosocial assessment"

[[form.section]]
id = "workload"
title = "Workload"

[[form.section.question]]
id = "q-overtime"
text = "Do you regularly work past your scheduled hours?"
risk = "work-overload"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Run("valid catalog parses and converts", func(t *testing.T) {
		catalog, err := config.LoadCatalog(writeCatalog(t, validCatalog))
		gt.NoError(t, err).Required()

		gt.Array(t, catalog.SeverityModels()).Length(1)
		gt.Array(t, catalog.RiskModels()).Length(1)

		forms, questions := catalog.FormModels()
		gt.Array(t, forms).Length(1).Required()
		gt.Array(t, questions).Length(1).Required()
		gt.Value(t, string(questions[0].FormID)).Equal("assessment")
		gt.Value(t, string(questions[0].SectionID)).Equal("workload")
		gt.Value(t, string(questions[0].RiskID)).Equal("work-overload")
		gt.Number(t, questions[0].Order).Equal(1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "absent.toml"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
	})

	t.Run("question referencing unknown risk", func(t *testing.T) {
		broken := validCatalog + `
[[form.section.question]]
id = "q-unknown"
text = "Question with a dangling risk reference?"
risk = "no-such-risk"
`
		_, err := config.LoadCatalog(writeCatalog(t, broken))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrUnknownReference)).True()
	})

	t.Run("duplicate severity ID", func(t *testing.T) {
		broken := validCatalog + `
[[severity]]
id = "sev-harmful"
label = "Harmful again"
rank = 3
`
		_, err := config.LoadCatalog(writeCatalog(t, broken))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrDuplicateID)).True()
	})

	t.Run("risk referencing unknown severity", func(t *testing.T) {
		broken := `
[[risk]]
id = "orphan"
title = "Orphan risk"
severity = "missing"
`
		_, err := config.LoadCatalog(writeCatalog(t, broken))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrUnknownReference)).True()
	})
}
