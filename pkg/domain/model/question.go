package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// Question is a yes/no catalog entry belonging to one section of one form
// and referencing exactly one risk. Options, when present, back an optional
// multi-select attached to the question.
type Question struct {
	ID        types.QuestionID `json:"id"`
	FormID    types.FormID     `json:"form_id"`
	SectionID types.SectionID  `json:"section_id"`
	RiskID    types.RiskID     `json:"risk_id"`
	Order     int              `json:"order"`
	Text      string           `json:"text"`
	Options   []string         `json:"options,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
