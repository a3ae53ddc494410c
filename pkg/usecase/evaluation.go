package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// EvaluationUseCase manages questionnaire instances and their answer sets.
// Answers follow a full-save contract: every save replaces the evaluation's
// whole answer set and recomputes the denormalized yes/no counters.
type EvaluationUseCase struct {
	repo interfaces.Repository
}

func NewEvaluationUseCase(repo interfaces.Repository) *EvaluationUseCase {
	return &EvaluationUseCase{repo: repo}
}

// EvaluationDetail bundles an evaluation with its stored answers
type EvaluationDetail struct {
	Evaluation *model.Evaluation `json:"evaluation"`
	Answers    []*model.Answer   `json:"answers"`
}

// Start opens a new evaluation of the given form for one employee. The
// company, employee and form must all exist, and the employee must belong
// to the company.
func (uc *EvaluationUseCase) Start(ctx context.Context, companyID types.CompanyID, employeeID types.EmployeeID, formID types.FormID) (*model.Evaluation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid company ID")
	}
	if err := employeeID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid employee ID")
	}
	if err := formID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid form ID")
	}

	if _, err := uc.repo.Company().Get(ctx, companyID); err != nil {
		return nil, goerr.Wrap(err, "failed to get company", goerr.V(CompanyIDKey, companyID))
	}

	employee, err := uc.repo.Employee().Get(ctx, employeeID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get employee", goerr.V("employee_id", employeeID))
	}
	if employee.CompanyID != companyID {
		return nil, goerr.Wrap(ErrInvalidArgument, "employee does not belong to company",
			goerr.V(CompanyIDKey, companyID),
			goerr.V("employee_id", employeeID),
		)
	}

	if _, err := uc.repo.Form().Get(ctx, formID); err != nil {
		return nil, goerr.Wrap(err, "failed to get form", goerr.V("form_id", formID))
	}

	evaluation := &model.Evaluation{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		FormID:     formID,
	}

	created, err := uc.repo.Evaluation().Create(ctx, evaluation)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create evaluation", goerr.V(CompanyIDKey, companyID))
	}

	return created, nil
}

// SaveAnswers replaces the evaluation's answer set. Every answer must
// reference a question of the evaluation's form; a completed evaluation
// rejects further saves. YesCount and NoCount are recomputed from the new
// set, counting recorded answers only.
func (uc *EvaluationUseCase) SaveAnswers(ctx context.Context, evaluationID types.EvaluationID, answers []*model.Answer, notes string) (*model.Evaluation, error) {
	evaluation, err := uc.repo.Evaluation().Get(ctx, evaluationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}
	if evaluation.Completed {
		return nil, goerr.Wrap(ErrEvaluationCompleted, "cannot save answers", goerr.V(EvaluationIDKey, evaluationID))
	}

	questions, err := uc.repo.Question().ListByForm(ctx, evaluation.FormID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list form questions", goerr.V("form_id", evaluation.FormID))
	}
	formQuestions := make(map[types.QuestionID]bool, len(questions))
	for _, q := range questions {
		formQuestions[q.ID] = true
	}

	for _, a := range answers {
		if !formQuestions[a.QuestionID] {
			return nil, goerr.Wrap(ErrQuestionWrongForm, "cannot save answers",
				goerr.V(EvaluationIDKey, evaluationID),
				goerr.V(QuestionIDKey, a.QuestionID),
			)
		}
		a.EvaluationID = evaluationID
	}

	if err := uc.repo.Answer().ReplaceByEvaluation(ctx, evaluationID, answers); err != nil {
		return nil, goerr.Wrap(err, "failed to replace answers", goerr.V(EvaluationIDKey, evaluationID))
	}

	evaluation.YesCount, evaluation.NoCount = model.CountAnswers(answers)
	evaluation.Notes = notes

	updated, err := uc.repo.Evaluation().Update(ctx, evaluation)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}

	return updated, nil
}

// Complete marks the evaluation as finished. Completing twice is a no-op.
func (uc *EvaluationUseCase) Complete(ctx context.Context, evaluationID types.EvaluationID) (*model.Evaluation, error) {
	evaluation, err := uc.repo.Evaluation().Get(ctx, evaluationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}
	if evaluation.Completed {
		return evaluation, nil
	}

	evaluation.Completed = true

	updated, err := uc.repo.Evaluation().Update(ctx, evaluation)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}

	return updated, nil
}

// Get returns the evaluation together with its answers
func (uc *EvaluationUseCase) Get(ctx context.Context, evaluationID types.EvaluationID) (*EvaluationDetail, error) {
	evaluation, err := uc.repo.Evaluation().Get(ctx, evaluationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}

	answers, err := uc.repo.Answer().ListByEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list answers", goerr.V(EvaluationIDKey, evaluationID))
	}

	return &EvaluationDetail{
		Evaluation: evaluation,
		Answers:    answers,
	}, nil
}

// ListByCompany returns all evaluations of the company
func (uc *EvaluationUseCase) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Evaluation, error) {
	evaluations, err := uc.repo.Evaluation().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list evaluations", goerr.V(CompanyIDKey, companyID))
	}
	return evaluations, nil
}

// Delete removes the evaluation and cascades to its answers. Answers go
// first so an interrupted delete never orphans them behind a live
// evaluation.
func (uc *EvaluationUseCase) Delete(ctx context.Context, evaluationID types.EvaluationID) error {
	if _, err := uc.repo.Evaluation().Get(ctx, evaluationID); err != nil {
		return goerr.Wrap(err, "failed to get evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}

	if err := uc.repo.Answer().DeleteByEvaluation(ctx, evaluationID); err != nil {
		return goerr.Wrap(err, "failed to delete answers", goerr.V(EvaluationIDKey, evaluationID))
	}

	if err := uc.repo.Evaluation().Delete(ctx, evaluationID); err != nil {
		return goerr.Wrap(err, "failed to delete evaluation", goerr.V(EvaluationIDKey, evaluationID))
	}

	return nil
}
