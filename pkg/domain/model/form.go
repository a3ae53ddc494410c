package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// Form is a questionnaire definition. Questions reference a form and one of
// its sections.
type Form struct {
	ID        types.FormID `json:"id"`
	Title     string       `json:"title"`
	Sections  []Section    `json:"sections"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Section groups questions inside a form for presentation purposes
type Section struct {
	ID    types.SectionID `json:"id"`
	Title string          `json:"title"`
	Order int             `json:"order"`
}

// HasSection reports whether the form contains the given section
func (f *Form) HasSection(id types.SectionID) bool {
	for _, s := range f.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
