package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// Risk is a named psychosocial hazard referencing exactly one severity level.
// Many questions may reference the same risk.
type Risk struct {
	ID          types.RiskID     `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	SeverityID  types.SeverityID `json:"severity_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Severity is an ordered harm classification. Rank orders severities from
// least (1) to most harmful.
type Severity struct {
	ID    types.SeverityID `json:"id"`
	Label string           `json:"label"`
	Rank  int              `json:"rank"`
}
