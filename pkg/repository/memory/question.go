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

type questionRepository struct {
	mu        sync.RWMutex
	questions map[types.QuestionID]*model.Question
}

func newQuestionRepository() *questionRepository {
	return &questionRepository{
		questions: make(map[types.QuestionID]*model.Question),
	}
}

func copyQuestion(q *model.Question) *model.Question {
	copied := *q
	if q.Options != nil {
		copied.Options = make([]string, len(q.Options))
		copy(copied.Options, q.Options)
	}
	return &copied
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyQuestion(question)
	if created.ID == "" {
		created.ID = types.NewQuestionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.questions[created.ID] = created
	return copyQuestion(created), nil
}

func (r *questionRepository) Get(ctx context.Context, id types.QuestionID) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	question, exists := r.questions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "question not found", goerr.V("id", id))
	}

	return copyQuestion(question), nil
}

func (r *questionRepository) ListByForm(ctx context.Context, formID types.FormID) ([]*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Question{}
	for _, q := range r.questions {
		if q.FormID == formID {
			result = append(result, copyQuestion(q))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})

	return result, nil
}

func (r *questionRepository) ListByIDs(ctx context.Context, ids []types.QuestionID) ([]*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Question{}
	for _, id := range ids {
		if q, exists := r.questions[id]; exists {
			result = append(result, copyQuestion(q))
		}
	}

	return result, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.questions[question.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "question not found", goerr.V("id", question.ID))
	}

	updated := copyQuestion(question)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.questions[updated.ID] = updated
	return copyQuestion(updated), nil
}

func (r *questionRepository) Delete(ctx context.Context, id types.QuestionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.questions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "question not found", goerr.V("id", id))
	}

	delete(r.questions, id)
	return nil
}
