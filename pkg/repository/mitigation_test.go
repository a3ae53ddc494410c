package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

func runMitigationPlanRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put creates plan with defaults", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.MitigationPlan().Put(ctx, &model.MitigationPlan{
			CompanyID:       types.CompanyID("acme"),
			RiskID:          types.RiskID("work-overload"),
			Status:          types.PlanStatusInProgress,
			ControlMeasures: "Hiring plan for Q4",
		})
		if err != nil {
			t.Fatalf("failed to put plan: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Status != types.PlanStatusInProgress {
			t.Errorf("expected status in_progress, got %s", created.Status)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}
	})

	t.Run("Put replaces the plan of the same company and risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.MitigationPlan().Put(ctx, &model.MitigationPlan{
			CompanyID: types.CompanyID("acme"),
			RiskID:    types.RiskID("work-overload"),
			Status:    types.PlanStatusPending,
		})
		if err != nil {
			t.Fatalf("failed to put plan: %v", err)
		}

		second, err := repo.MitigationPlan().Put(ctx, &model.MitigationPlan{
			CompanyID: types.CompanyID("acme"),
			RiskID:    types.RiskID("work-overload"),
			Status:    types.PlanStatusConcluded,
		})
		if err != nil {
			t.Fatalf("failed to put plan: %v", err)
		}

		if second.ID != first.ID {
			t.Errorf("expected replaced plan to keep ID %s, got %s", first.ID, second.ID)
		}
		if second.Status != types.PlanStatusConcluded {
			t.Errorf("expected status concluded, got %s", second.Status)
		}

		plans, err := repo.MitigationPlan().ListByCompany(ctx, types.CompanyID("acme"))
		if err != nil {
			t.Fatalf("failed to list plans: %v", err)
		}
		if len(plans) != 1 {
			t.Errorf("expected 1 plan after upsert, got %d", len(plans))
		}
	})

	t.Run("GetByCompanyRisk scopes to the pair", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if _, err := repo.MitigationPlan().Put(ctx, &model.MitigationPlan{
			CompanyID: types.CompanyID("acme"),
			RiskID:    types.RiskID("work-overload"),
			Status:    types.PlanStatusPending,
		}); err != nil {
			t.Fatalf("failed to put plan: %v", err)
		}

		plan, err := repo.MitigationPlan().GetByCompanyRisk(ctx, types.CompanyID("acme"), types.RiskID("work-overload"))
		if err != nil {
			t.Fatalf("failed to get plan: %v", err)
		}
		if plan.RiskID != "work-overload" {
			t.Errorf("unexpected risk ID %s", plan.RiskID)
		}

		_, err = repo.MitigationPlan().GetByCompanyRisk(ctx, types.CompanyID("other"), types.RiskID("work-overload"))
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected ErrNotFound for other company, got %v", err)
		}
	})

	t.Run("ListByCompany excludes other companies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, p := range []*model.MitigationPlan{
			{CompanyID: types.CompanyID("acme"), RiskID: types.RiskID("r1"), Status: types.PlanStatusPending},
			{CompanyID: types.CompanyID("acme"), RiskID: types.RiskID("r2"), Status: types.PlanStatusPending},
			{CompanyID: types.CompanyID("other"), RiskID: types.RiskID("r1"), Status: types.PlanStatusPending},
		} {
			if _, err := repo.MitigationPlan().Put(ctx, p); err != nil {
				t.Fatalf("failed to put plan: %v", err)
			}
		}

		plans, err := repo.MitigationPlan().ListByCompany(ctx, types.CompanyID("acme"))
		if err != nil {
			t.Fatalf("failed to list plans: %v", err)
		}
		if len(plans) != 2 {
			t.Errorf("expected 2 plans, got %d", len(plans))
		}
	})

	t.Run("Delete removes plan by ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.MitigationPlan().Put(ctx, &model.MitigationPlan{
			CompanyID: types.CompanyID("acme"),
			RiskID:    types.RiskID("work-overload"),
			Status:    types.PlanStatusPending,
		})
		if err != nil {
			t.Fatalf("failed to put plan: %v", err)
		}

		if err := repo.MitigationPlan().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete plan: %v", err)
		}

		_, err = repo.MitigationPlan().GetByCompanyRisk(ctx, types.CompanyID("acme"), types.RiskID("work-overload"))
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestMemoryMitigationPlanRepository(t *testing.T) {
	runMitigationPlanRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreMitigationPlanRepository(t *testing.T) {
	runMitigationPlanRepositoryTest(t, newFirestoreRepository)
}
