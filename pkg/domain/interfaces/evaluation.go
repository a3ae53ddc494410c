package interfaces

import (
	"context"

	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type EvaluationRepository interface {
	// Create creates a new evaluation with a generated ID
	Create(ctx context.Context, evaluation *model.Evaluation) (*model.Evaluation, error)

	// Get retrieves an evaluation by ID
	Get(ctx context.Context, id types.EvaluationID) (*model.Evaluation, error)

	// ListByCompany retrieves all evaluations of a company
	ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Evaluation, error)

	// Update updates an existing evaluation
	Update(ctx context.Context, evaluation *model.Evaluation) (*model.Evaluation, error)

	// Delete deletes an evaluation by ID. Callers are responsible for
	// cascading to the evaluation's answers.
	Delete(ctx context.Context, id types.EvaluationID) error
}

type AnswerRepository interface {
	// ReplaceByEvaluation removes every stored answer of the evaluation and
	// inserts the given set. This is the full-save contract: answers are
	// never updated in place.
	ReplaceByEvaluation(ctx context.Context, evaluationID types.EvaluationID, answers []*model.Answer) error

	// ListByEvaluation retrieves all answers of one evaluation
	ListByEvaluation(ctx context.Context, evaluationID types.EvaluationID) ([]*model.Answer, error)

	// ListByEvaluations retrieves all answers of the given evaluations in a
	// single call
	ListByEvaluations(ctx context.Context, evaluationIDs []types.EvaluationID) ([]*model.Answer, error)

	// DeleteByEvaluation removes every answer of the evaluation
	DeleteByEvaluation(ctx context.Context, evaluationID types.EvaluationID) error

	// CountByQuestion returns the number of stored answers referencing the
	// question across all evaluations
	CountByQuestion(ctx context.Context, questionID types.QuestionID) (int, error)
}
