package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

func boolPtr(v bool) *bool {
	return &v
}

func runEvaluationRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and update evaluation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Evaluation().Create(ctx, &model.Evaluation{
			CompanyID:  types.CompanyID("acme"),
			EmployeeID: types.EmployeeID("ana"),
			FormID:     types.FormID("assessment"),
		})
		if err != nil {
			t.Fatalf("failed to create evaluation: %v", err)
		}
		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Completed {
			t.Error("expected new evaluation to be incomplete")
		}

		created.YesCount = 3
		created.NoCount = 2
		created.Completed = true
		updated, err := repo.Evaluation().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update evaluation: %v", err)
		}
		if updated.YesCount != 3 || updated.NoCount != 2 {
			t.Errorf("expected counters 3/2, got %d/%d", updated.YesCount, updated.NoCount)
		}
		if !updated.Completed {
			t.Error("expected completed evaluation")
		}
	})

	t.Run("ListByCompany filters by company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, companyID := range []types.CompanyID{"one", "one", "two"} {
			if _, err := repo.Evaluation().Create(ctx, &model.Evaluation{
				CompanyID:  companyID,
				EmployeeID: types.EmployeeID("emp"),
				FormID:     types.FormID("form"),
			}); err != nil {
				t.Fatalf("failed to create evaluation: %v", err)
			}
		}

		evaluations, err := repo.Evaluation().ListByCompany(ctx, types.CompanyID("one"))
		if err != nil {
			t.Fatalf("failed to list evaluations: %v", err)
		}
		if len(evaluations) != 2 {
			t.Errorf("expected 2 evaluations, got %d", len(evaluations))
		}
	})

	t.Run("ReplaceByEvaluation replaces the whole answer set", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		evaluation, err := repo.Evaluation().Create(ctx, &model.Evaluation{
			CompanyID:  types.CompanyID("acme"),
			EmployeeID: types.EmployeeID("ana"),
			FormID:     types.FormID("assessment"),
		})
		if err != nil {
			t.Fatalf("failed to create evaluation: %v", err)
		}

		first := []*model.Answer{
			{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q1"), Value: boolPtr(true)},
			{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q2"), Value: boolPtr(false)},
		}
		if err := repo.Answer().ReplaceByEvaluation(ctx, evaluation.ID, first); err != nil {
			t.Fatalf("failed to replace answers: %v", err)
		}

		second := []*model.Answer{
			{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q3"), Value: boolPtr(true)},
		}
		if err := repo.Answer().ReplaceByEvaluation(ctx, evaluation.ID, second); err != nil {
			t.Fatalf("failed to replace answers: %v", err)
		}

		answers, err := repo.Answer().ListByEvaluation(ctx, evaluation.ID)
		if err != nil {
			t.Fatalf("failed to list answers: %v", err)
		}
		if len(answers) != 1 {
			t.Fatalf("expected 1 answer after replace, got %d", len(answers))
		}
		if answers[0].QuestionID != "q3" {
			t.Errorf("expected question q3, got %s", answers[0].QuestionID)
		}
	})

	t.Run("ListByEvaluations gathers answers across evaluations", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		var ids []types.EvaluationID
		for i := 0; i < 2; i++ {
			evaluation, err := repo.Evaluation().Create(ctx, &model.Evaluation{
				CompanyID:  types.CompanyID("acme"),
				EmployeeID: types.EmployeeID("emp"),
				FormID:     types.FormID("assessment"),
			})
			if err != nil {
				t.Fatalf("failed to create evaluation: %v", err)
			}
			ids = append(ids, evaluation.ID)

			if err := repo.Answer().ReplaceByEvaluation(ctx, evaluation.ID, []*model.Answer{
				{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q1"), Value: boolPtr(true)},
			}); err != nil {
				t.Fatalf("failed to replace answers: %v", err)
			}
		}

		answers, err := repo.Answer().ListByEvaluations(ctx, ids)
		if err != nil {
			t.Fatalf("failed to list answers: %v", err)
		}
		if len(answers) != 2 {
			t.Errorf("expected 2 answers, got %d", len(answers))
		}
	})

	t.Run("CountByQuestion counts answers across evaluations", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			evaluation, err := repo.Evaluation().Create(ctx, &model.Evaluation{
				CompanyID:  types.CompanyID("acme"),
				EmployeeID: types.EmployeeID("emp"),
				FormID:     types.FormID("assessment"),
			})
			if err != nil {
				t.Fatalf("failed to create evaluation: %v", err)
			}
			if err := repo.Answer().ReplaceByEvaluation(ctx, evaluation.ID, []*model.Answer{
				{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q1"), Value: boolPtr(true)},
				{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q2"), Value: boolPtr(false)},
			}); err != nil {
				t.Fatalf("failed to replace answers: %v", err)
			}
		}

		count, err := repo.Answer().CountByQuestion(ctx, types.QuestionID("q1"))
		if err != nil {
			t.Fatalf("failed to count answers: %v", err)
		}
		if count != 3 {
			t.Errorf("expected count=3, got %d", count)
		}

		count, err = repo.Answer().CountByQuestion(ctx, types.QuestionID("unused"))
		if err != nil {
			t.Fatalf("failed to count answers: %v", err)
		}
		if count != 0 {
			t.Errorf("expected count=0, got %d", count)
		}
	})

	t.Run("DeleteByEvaluation removes all answers", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		evaluation, err := repo.Evaluation().Create(ctx, &model.Evaluation{
			CompanyID:  types.CompanyID("acme"),
			EmployeeID: types.EmployeeID("ana"),
			FormID:     types.FormID("assessment"),
		})
		if err != nil {
			t.Fatalf("failed to create evaluation: %v", err)
		}
		if err := repo.Answer().ReplaceByEvaluation(ctx, evaluation.ID, []*model.Answer{
			{EvaluationID: evaluation.ID, QuestionID: types.QuestionID("q1"), Value: boolPtr(true)},
		}); err != nil {
			t.Fatalf("failed to replace answers: %v", err)
		}

		if err := repo.Answer().DeleteByEvaluation(ctx, evaluation.ID); err != nil {
			t.Fatalf("failed to delete answers: %v", err)
		}

		answers, err := repo.Answer().ListByEvaluation(ctx, evaluation.ID)
		if err != nil {
			t.Fatalf("failed to list answers: %v", err)
		}
		if len(answers) != 0 {
			t.Errorf("expected no answers after delete, got %d", len(answers))
		}
	})

	t.Run("Delete returns ErrNotFound for unknown evaluation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Evaluation().Delete(ctx, types.EvaluationID("no-such-evaluation"))
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestMemoryEvaluationRepository(t *testing.T) {
	runEvaluationRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreEvaluationRepository(t *testing.T) {
	runEvaluationRepositoryTest(t, newFirestoreRepository)
}
