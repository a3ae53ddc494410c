package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// MitigationPlan is a per-company, per-risk remediation record. At most one
// plan exists per (company, risk) pair. The report engine only reads plans;
// they are created and updated independently of evaluations.
type MitigationPlan struct {
	ID              types.PlanID     `json:"id"`
	CompanyID       types.CompanyID  `json:"company_id"`
	RiskID          types.RiskID     `json:"risk_id"`
	Status          types.PlanStatus `json:"status"`
	ControlMeasures string           `json:"control_measures"`
	Deadline        string           `json:"deadline"`
	Responsible     string           `json:"responsible"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
