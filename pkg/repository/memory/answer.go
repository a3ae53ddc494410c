package memory

import (
	"context"
	"sync"

	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type answerRepository struct {
	mu      sync.RWMutex
	answers map[types.EvaluationID][]*model.Answer
}

func newAnswerRepository() *answerRepository {
	return &answerRepository{
		answers: make(map[types.EvaluationID][]*model.Answer),
	}
}

func copyAnswer(a *model.Answer) *model.Answer {
	copied := *a
	if a.Value != nil {
		v := *a.Value
		copied.Value = &v
	}
	if a.SelectedOptions != nil {
		copied.SelectedOptions = make([]string, len(a.SelectedOptions))
		copy(copied.SelectedOptions, a.SelectedOptions)
	}
	return &copied
}

func (r *answerRepository) ReplaceByEvaluation(ctx context.Context, evaluationID types.EvaluationID, answers []*model.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]*model.Answer, 0, len(answers))
	for _, a := range answers {
		copied := copyAnswer(a)
		copied.EvaluationID = evaluationID
		stored = append(stored, copied)
	}

	r.answers[evaluationID] = stored
	return nil
}

func (r *answerRepository) ListByEvaluation(ctx context.Context, evaluationID types.EvaluationID) ([]*model.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.answers[evaluationID]
	result := make([]*model.Answer, 0, len(stored))
	for _, a := range stored {
		result = append(result, copyAnswer(a))
	}

	return result, nil
}

func (r *answerRepository) ListByEvaluations(ctx context.Context, evaluationIDs []types.EvaluationID) ([]*model.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Answer{}
	for _, id := range evaluationIDs {
		for _, a := range r.answers[id] {
			result = append(result, copyAnswer(a))
		}
	}

	return result, nil
}

func (r *answerRepository) DeleteByEvaluation(ctx context.Context, evaluationID types.EvaluationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.answers, evaluationID)
	return nil
}

func (r *answerRepository) CountByQuestion(ctx context.Context, questionID types.QuestionID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, stored := range r.answers {
		for _, a := range stored {
			if a.QuestionID == questionID {
				count++
			}
		}
	}

	return count, nil
}
