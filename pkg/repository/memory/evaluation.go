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

type evaluationRepository struct {
	mu          sync.RWMutex
	evaluations map[types.EvaluationID]*model.Evaluation
}

func newEvaluationRepository() *evaluationRepository {
	return &evaluationRepository{
		evaluations: make(map[types.EvaluationID]*model.Evaluation),
	}
}

func copyEvaluation(e *model.Evaluation) *model.Evaluation {
	copied := *e
	return &copied
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) (*model.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEvaluation(evaluation)
	if created.ID == "" {
		created.ID = types.NewEvaluationID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.evaluations[created.ID] = created
	return copyEvaluation(created), nil
}

func (r *evaluationRepository) Get(ctx context.Context, id types.EvaluationID) (*model.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	evaluation, exists := r.evaluations[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "evaluation not found", goerr.V("id", id))
	}

	return copyEvaluation(evaluation), nil
}

func (r *evaluationRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Evaluation{}
	for _, e := range r.evaluations {
		if e.CompanyID == companyID {
			result = append(result, copyEvaluation(e))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *evaluationRepository) Update(ctx context.Context, evaluation *model.Evaluation) (*model.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.evaluations[evaluation.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "evaluation not found", goerr.V("id", evaluation.ID))
	}

	updated := copyEvaluation(evaluation)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.evaluations[updated.ID] = updated
	return copyEvaluation(updated), nil
}

func (r *evaluationRepository) Delete(ctx context.Context, id types.EvaluationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.evaluations[id]; !exists {
		return goerr.Wrap(ErrNotFound, "evaluation not found", goerr.V("id", id))
	}

	delete(r.evaluations, id)
	return nil
}
