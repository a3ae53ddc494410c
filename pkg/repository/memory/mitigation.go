package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// planKey is a composite key for mitigation plans (companyID + riskID)
type planKey struct {
	companyID types.CompanyID
	riskID    types.RiskID
}

type mitigationPlanRepository struct {
	mu    sync.RWMutex
	plans map[planKey]*model.MitigationPlan
}

func newMitigationPlanRepository() *mitigationPlanRepository {
	return &mitigationPlanRepository{
		plans: make(map[planKey]*model.MitigationPlan),
	}
}

func copyPlan(p *model.MitigationPlan) *model.MitigationPlan {
	copied := *p
	return &copied
}

func (r *mitigationPlanRepository) Put(ctx context.Context, plan *model.MitigationPlan) (*model.MitigationPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := planKey{companyID: plan.CompanyID, riskID: plan.RiskID}
	now := time.Now().UTC()

	stored := copyPlan(plan)
	if existing, exists := r.plans[key]; exists {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		if stored.ID == "" {
			stored.ID = types.NewPlanID()
		}
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	stored.Status = stored.Status.Normalize()

	r.plans[key] = stored
	return copyPlan(stored), nil
}

func (r *mitigationPlanRepository) GetByCompanyRisk(ctx context.Context, companyID types.CompanyID, riskID types.RiskID) (*model.MitigationPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, exists := r.plans[planKey{companyID: companyID, riskID: riskID}]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "mitigation plan not found",
			goerr.V("companyID", companyID), goerr.V("riskID", riskID))
	}

	return copyPlan(plan), nil
}

func (r *mitigationPlanRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.MitigationPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.MitigationPlan{}
	for key, p := range r.plans {
		if key.companyID == companyID {
			result = append(result, copyPlan(p))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *mitigationPlanRepository) Delete(ctx context.Context, id types.PlanID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, p := range r.plans {
		if p.ID == id {
			delete(r.plans, key)
			return nil
		}
	}

	return goerr.Wrap(ErrNotFound, "mitigation plan not found", goerr.V("id", id))
}
