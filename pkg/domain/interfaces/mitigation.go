package interfaces

import (
	"context"

	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type MitigationPlanRepository interface {
	// Put creates or replaces the plan for its (company, risk) pair. At most
	// one plan exists per pair.
	Put(ctx context.Context, plan *model.MitigationPlan) (*model.MitigationPlan, error)

	// GetByCompanyRisk retrieves the plan scoped to a company and risk
	GetByCompanyRisk(ctx context.Context, companyID types.CompanyID, riskID types.RiskID) (*model.MitigationPlan, error)

	// ListByCompany retrieves all plans of a company
	ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.MitigationPlan, error)

	// Delete deletes a plan by ID
	Delete(ctx context.Context, id types.PlanID) error
}
