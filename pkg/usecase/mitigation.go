package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// MitigationUseCase manages per-company remediation plans. Plans are keyed
// by (company, risk) and written through an upsert, so saving twice for the
// same pair updates the existing plan.
type MitigationUseCase struct {
	repo interfaces.Repository
}

func NewMitigationUseCase(repo interfaces.Repository) *MitigationUseCase {
	return &MitigationUseCase{repo: repo}
}

// Put creates or updates the plan for the plan's (company, risk) pair. The
// company and risk must exist; an empty status defaults to pending.
func (uc *MitigationUseCase) Put(ctx context.Context, plan *model.MitigationPlan) (*model.MitigationPlan, error) {
	if err := plan.CompanyID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid company ID")
	}
	if err := plan.RiskID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid risk ID")
	}

	if !plan.Status.Normalize().IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid plan status", goerr.V("status", plan.Status))
	}

	if _, err := uc.repo.Company().Get(ctx, plan.CompanyID); err != nil {
		return nil, goerr.Wrap(err, "failed to get company", goerr.V(CompanyIDKey, plan.CompanyID))
	}
	if _, err := uc.repo.Risk().Get(ctx, plan.RiskID); err != nil {
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V(RiskIDKey, plan.RiskID))
	}

	saved, err := uc.repo.MitigationPlan().Put(ctx, plan)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save mitigation plan",
			goerr.V(CompanyIDKey, plan.CompanyID),
			goerr.V(RiskIDKey, plan.RiskID),
		)
	}

	return saved, nil
}

// Get returns the plan for the (company, risk) pair
func (uc *MitigationUseCase) Get(ctx context.Context, companyID types.CompanyID, riskID types.RiskID) (*model.MitigationPlan, error) {
	plan, err := uc.repo.MitigationPlan().GetByCompanyRisk(ctx, companyID, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get mitigation plan",
			goerr.V(CompanyIDKey, companyID),
			goerr.V(RiskIDKey, riskID),
		)
	}
	return plan, nil
}

// ListByCompany returns all plans of the company
func (uc *MitigationUseCase) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.MitigationPlan, error) {
	plans, err := uc.repo.MitigationPlan().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list mitigation plans", goerr.V(CompanyIDKey, companyID))
	}
	return plans, nil
}

// Delete removes the plan by ID
func (uc *MitigationUseCase) Delete(ctx context.Context, planID types.PlanID) error {
	if err := planID.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidArgument, "invalid plan ID")
	}
	if err := uc.repo.MitigationPlan().Delete(ctx, planID); err != nil {
		return goerr.Wrap(err, "failed to delete mitigation plan", goerr.V("plan_id", planID))
	}
	return nil
}
