package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// Employee belongs to one company and carries the job-role name used by the
// exposure resolver when building risk reports.
type Employee struct {
	ID            types.EmployeeID `json:"id"`
	CompanyID     types.CompanyID  `json:"company_id"`
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	DepartmentIDs []string         `json:"department_ids,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
