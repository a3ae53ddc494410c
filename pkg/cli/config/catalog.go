package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// Catalog is the TOML seed definition of the questionnaire catalog:
// severity levels, risks and one or more forms with their sections and
// questions. IDs are symbolic and become the stored entity IDs, so seeding
// is idempotent across environments.
type Catalog struct {
	Severities []SeverityDef `toml:"severity"`
	Risks      []RiskDef     `toml:"risk"`
	Forms      []FormDef     `toml:"form"`
}

// SeverityDef is a harm classification level
type SeverityDef struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Rank  int    `toml:"rank"`
}

func (s *SeverityDef) Validate() error {
	if s.ID == "" {
		return goerr.Wrap(ErrInvalidConfig, "severity ID is required")
	}
	if s.Label == "" {
		return goerr.Wrap(ErrMissingLabel, "severity label is required", goerr.V(SeverityIDKey, s.ID))
	}
	if s.Rank < 1 {
		return goerr.Wrap(ErrInvalidRank, "invalid severity rank", goerr.V(SeverityIDKey, s.ID), goerr.V("rank", s.Rank))
	}
	return nil
}

// RiskDef is a psychosocial hazard referencing a severity by symbolic ID
type RiskDef struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Severity    string `toml:"severity"`
}

func (r *RiskDef) Validate() error {
	if r.ID == "" {
		return goerr.Wrap(ErrInvalidConfig, "risk ID is required")
	}
	if r.Title == "" {
		return goerr.Wrap(ErrMissingTitle, "risk title is required", goerr.V(RiskIDKey, r.ID))
	}
	if r.Severity == "" {
		return goerr.Wrap(ErrUnknownReference, "risk severity is required", goerr.V(RiskIDKey, r.ID))
	}
	return nil
}

// FormDef is a questionnaire definition
type FormDef struct {
	ID       string       `toml:"id"`
	Title    string       `toml:"title"`
	Sections []SectionDef `toml:"section"`
}

// SectionDef groups questions inside a form
type SectionDef struct {
	ID        string        `toml:"id"`
	Title     string        `toml:"title"`
	Questions []QuestionDef `toml:"question"`
}

// QuestionDef is a yes/no question referencing a risk by symbolic ID
type QuestionDef struct {
	ID      string   `toml:"id"`
	Text    string   `toml:"text"`
	Risk    string   `toml:"risk"`
	Options []string `toml:"options"`
}

// Validate checks internal consistency: unique IDs and resolvable
// references.
func (c *Catalog) Validate() error {
	severityIDs := make(map[string]bool)
	for _, s := range c.Severities {
		if err := s.Validate(); err != nil {
			return err
		}
		if severityIDs[s.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate severity ID", goerr.V(SeverityIDKey, s.ID))
		}
		severityIDs[s.ID] = true
	}

	riskIDs := make(map[string]bool)
	for _, r := range c.Risks {
		if err := r.Validate(); err != nil {
			return err
		}
		if riskIDs[r.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate risk ID", goerr.V(RiskIDKey, r.ID))
		}
		if !severityIDs[r.Severity] {
			return goerr.Wrap(ErrUnknownReference, "risk references unknown severity",
				goerr.V(RiskIDKey, r.ID), goerr.V(SeverityIDKey, r.Severity))
		}
		riskIDs[r.ID] = true
	}

	formIDs := make(map[string]bool)
	questionIDs := make(map[string]bool)
	for _, f := range c.Forms {
		if f.ID == "" {
			return goerr.Wrap(ErrInvalidConfig, "form ID is required")
		}
		if f.Title == "" {
			return goerr.Wrap(ErrMissingTitle, "form title is required", goerr.V("form_id", f.ID))
		}
		if formIDs[f.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate form ID", goerr.V("form_id", f.ID))
		}
		formIDs[f.ID] = true

		sectionIDs := make(map[string]bool)
		for _, sec := range f.Sections {
			if sec.ID == "" {
				return goerr.Wrap(ErrInvalidConfig, "section ID is required", goerr.V("form_id", f.ID))
			}
			if sec.Title == "" {
				return goerr.Wrap(ErrMissingTitle, "section title is required", goerr.V(SectionIDKey, sec.ID))
			}
			if sectionIDs[sec.ID] {
				return goerr.Wrap(ErrDuplicateID, "duplicate section ID", goerr.V(SectionIDKey, sec.ID))
			}
			sectionIDs[sec.ID] = true

			for _, q := range sec.Questions {
				if q.ID == "" {
					return goerr.Wrap(ErrInvalidConfig, "question ID is required", goerr.V(SectionIDKey, sec.ID))
				}
				if q.Text == "" {
					return goerr.Wrap(ErrMissingText, "question text is required", goerr.V(QuestionIDKey, q.ID))
				}
				if questionIDs[q.ID] {
					return goerr.Wrap(ErrDuplicateID, "duplicate question ID", goerr.V(QuestionIDKey, q.ID))
				}
				if !riskIDs[q.Risk] {
					return goerr.Wrap(ErrUnknownReference, "question references unknown risk",
						goerr.V(QuestionIDKey, q.ID), goerr.V(RiskIDKey, q.Risk))
				}
				questionIDs[q.ID] = true
			}
		}
	}

	return nil
}

// LoadCatalog reads and validates a catalog definition from a TOML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "catalog file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(ConfigPathKey, path))
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V(ConfigPathKey, path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.V(ConfigPathKey, path))
	}

	return &catalog, nil
}

// Severity models for storage, keeping the symbolic IDs
func (c *Catalog) SeverityModels() []*model.Severity {
	result := make([]*model.Severity, 0, len(c.Severities))
	for _, s := range c.Severities {
		result = append(result, &model.Severity{
			ID:    types.SeverityID(s.ID),
			Label: s.Label,
			Rank:  s.Rank,
		})
	}
	return result
}

// RiskModels converts risk definitions for storage
func (c *Catalog) RiskModels() []*model.Risk {
	result := make([]*model.Risk, 0, len(c.Risks))
	for _, r := range c.Risks {
		result = append(result, &model.Risk{
			ID:          types.RiskID(r.ID),
			Title:       r.Title,
			Description: r.Description,
			SeverityID:  types.SeverityID(r.Severity),
		})
	}
	return result
}

// FormModels converts form definitions for storage, questions included.
// Question order follows the definition order within the file.
func (c *Catalog) FormModels() ([]*model.Form, []*model.Question) {
	forms := make([]*model.Form, 0, len(c.Forms))
	var questions []*model.Question

	for _, f := range c.Forms {
		form := &model.Form{
			ID:    types.FormID(f.ID),
			Title: f.Title,
		}
		for i, sec := range f.Sections {
			form.Sections = append(form.Sections, model.Section{
				ID:    types.SectionID(sec.ID),
				Title: sec.Title,
				Order: i + 1,
			})
			for _, q := range sec.Questions {
				questions = append(questions, &model.Question{
					ID:        types.QuestionID(q.ID),
					FormID:    form.ID,
					SectionID: types.SectionID(sec.ID),
					RiskID:    types.RiskID(q.Risk),
					Order:     len(questions) + 1,
					Text:      q.Text,
					Options:   q.Options,
				})
			}
		}
		forms = append(forms, form)
	}

	return forms, questions
}
