package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

func runCompanyRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{Name: "Acme Manufacturing"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Name != "Acme Manufacturing" {
			t.Errorf("expected name=Acme Manufacturing, got %s", created.Name)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}
		if created.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
	})

	t.Run("Create preserves a caller-provided ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{
			ID:   types.CompanyID("acme"),
			Name: "Acme Manufacturing",
		})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		if created.ID != "acme" {
			t.Errorf("expected ID=acme, got %s", created.ID)
		}
	})

	t.Run("Get retrieves existing company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{Name: "Acme"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		retrieved, err := repo.Company().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get company: %v", err)
		}
		if retrieved.Name != created.Name {
			t.Errorf("expected name=%s, got %s", created.Name, retrieved.Name)
		}
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Company().Get(ctx, types.CompanyID("no-such-company"))
		if err == nil {
			t.Fatal("expected error for unknown company")
		}
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{Name: "Before"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		created.Name = "After"
		updated, err := repo.Company().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update company: %v", err)
		}

		if updated.Name != "After" {
			t.Errorf("expected name=After, got %s", updated.Name)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("expected CreatedAt to be preserved, got %v", updated.CreatedAt)
		}
	})

	t.Run("Delete removes company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{Name: "Ephemeral"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		if err := repo.Company().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete company: %v", err)
		}

		if _, err := repo.Company().Get(ctx, created.ID); !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Employee ListByCompany filters by company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		company1, err := repo.Company().Create(ctx, &model.Company{Name: "One"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}
		company2, err := repo.Company().Create(ctx, &model.Company{Name: "Two"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		for _, e := range []*model.Employee{
			{CompanyID: company1.ID, Name: "Ana", Role: "Developer"},
			{CompanyID: company1.ID, Name: "Luis", Role: "Manager"},
			{CompanyID: company2.ID, Name: "Marta", Role: "Operator"},
		} {
			if _, err := repo.Employee().Create(ctx, e); err != nil {
				t.Fatalf("failed to create employee: %v", err)
			}
		}

		employees, err := repo.Employee().ListByCompany(ctx, company1.ID)
		if err != nil {
			t.Fatalf("failed to list employees: %v", err)
		}
		if len(employees) != 2 {
			t.Errorf("expected 2 employees, got %d", len(employees))
		}
		for _, e := range employees {
			if e.CompanyID != company1.ID {
				t.Errorf("unexpected company ID %s", e.CompanyID)
			}
		}
	})

	t.Run("Employee update and delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		company, err := repo.Company().Create(ctx, &model.Company{Name: "Acme"})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		created, err := repo.Employee().Create(ctx, &model.Employee{
			CompanyID: company.ID,
			Name:      "Ana",
			Role:      "Developer",
		})
		if err != nil {
			t.Fatalf("failed to create employee: %v", err)
		}

		created.Role = "Tech Lead"
		updated, err := repo.Employee().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update employee: %v", err)
		}
		if updated.Role != "Tech Lead" {
			t.Errorf("expected role=Tech Lead, got %s", updated.Role)
		}

		if err := repo.Employee().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete employee: %v", err)
		}
		if _, err := repo.Employee().Get(ctx, created.ID); !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestMemoryCompanyRepository(t *testing.T) {
	runCompanyRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreCompanyRepository(t *testing.T) {
	runCompanyRepositoryTest(t, newFirestoreRepository)
}
