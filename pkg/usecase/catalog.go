package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// CatalogUseCase manages the shared questionnaire catalog: forms with their
// sections, questions, risks and severity levels. The catalog is global,
// not scoped to a company.
type CatalogUseCase struct {
	repo interfaces.Repository
}

func NewCatalogUseCase(repo interfaces.Repository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// FormDetail bundles a form with its questions in display order
type FormDetail struct {
	Form      *model.Form       `json:"form"`
	Questions []*model.Question `json:"questions"`
}

func (uc *CatalogUseCase) CreateForm(ctx context.Context, form *model.Form) (*model.Form, error) {
	if form.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "form title is required")
	}

	created, err := uc.repo.Form().Create(ctx, form)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create form")
	}
	return created, nil
}

func (uc *CatalogUseCase) GetForm(ctx context.Context, formID types.FormID) (*FormDetail, error) {
	form, err := uc.repo.Form().Get(ctx, formID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get form", goerr.V("form_id", formID))
	}

	questions, err := uc.repo.Question().ListByForm(ctx, formID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list form questions", goerr.V("form_id", formID))
	}

	return &FormDetail{
		Form:      form,
		Questions: questions,
	}, nil
}

func (uc *CatalogUseCase) ListForms(ctx context.Context) ([]*model.Form, error) {
	forms, err := uc.repo.Form().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list forms")
	}
	return forms, nil
}

func (uc *CatalogUseCase) UpdateForm(ctx context.Context, form *model.Form) (*model.Form, error) {
	if form.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "form title is required")
	}

	updated, err := uc.repo.Form().Update(ctx, form)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update form", goerr.V("form_id", form.ID))
	}
	return updated, nil
}

// DeleteForm removes a form. A form still carrying questions cannot be
// deleted; questions must be removed first.
func (uc *CatalogUseCase) DeleteForm(ctx context.Context, formID types.FormID) error {
	questions, err := uc.repo.Question().ListByForm(ctx, formID)
	if err != nil {
		return goerr.Wrap(err, "failed to list form questions", goerr.V("form_id", formID))
	}
	if len(questions) > 0 {
		return goerr.Wrap(ErrFormHasQuestions, "cannot delete form",
			goerr.V("form_id", formID),
			goerr.V("question_count", len(questions)),
		)
	}

	if err := uc.repo.Form().Delete(ctx, formID); err != nil {
		return goerr.Wrap(err, "failed to delete form", goerr.V("form_id", formID))
	}
	return nil
}

// CreateQuestion adds a question to a form. The section must belong to the
// form and the referenced risk must exist.
func (uc *CatalogUseCase) CreateQuestion(ctx context.Context, question *model.Question) (*model.Question, error) {
	if question.Text == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "question text is required")
	}

	if err := uc.validateQuestionRefs(ctx, question); err != nil {
		return nil, err
	}

	created, err := uc.repo.Question().Create(ctx, question)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create question", goerr.V("form_id", question.FormID))
	}
	return created, nil
}

func (uc *CatalogUseCase) GetQuestion(ctx context.Context, questionID types.QuestionID) (*model.Question, error) {
	question, err := uc.repo.Question().Get(ctx, questionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get question", goerr.V(QuestionIDKey, questionID))
	}
	return question, nil
}

// UpdateQuestion edits a question. Once answers reference the question its
// form, section and risk are frozen: re-pointing them would re-attribute the
// recorded answers. Order and text stay editable.
func (uc *CatalogUseCase) UpdateQuestion(ctx context.Context, question *model.Question) (*model.Question, error) {
	if question.Text == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "question text is required")
	}

	existing, err := uc.repo.Question().Get(ctx, question.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get question", goerr.V(QuestionIDKey, question.ID))
	}

	if existing.FormID != question.FormID ||
		existing.SectionID != question.SectionID ||
		existing.RiskID != question.RiskID {
		count, err := uc.repo.Answer().CountByQuestion(ctx, question.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to count answers", goerr.V(QuestionIDKey, question.ID))
		}
		if count > 0 {
			return nil, goerr.Wrap(ErrQuestionAnswered, "cannot update question",
				goerr.V(QuestionIDKey, question.ID),
				goerr.V("answer_count", count),
			)
		}
	}

	if err := uc.validateQuestionRefs(ctx, question); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Question().Update(ctx, question)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update question", goerr.V(QuestionIDKey, question.ID))
	}
	return updated, nil
}

// DeleteQuestion removes a question unless answers reference it. Answered
// questions stay so existing evaluations keep resolving.
func (uc *CatalogUseCase) DeleteQuestion(ctx context.Context, questionID types.QuestionID) error {
	count, err := uc.repo.Answer().CountByQuestion(ctx, questionID)
	if err != nil {
		return goerr.Wrap(err, "failed to count answers", goerr.V(QuestionIDKey, questionID))
	}
	if count > 0 {
		return goerr.Wrap(ErrQuestionHasAnswers, "cannot delete question",
			goerr.V(QuestionIDKey, questionID),
			goerr.V("answer_count", count),
		)
	}

	if err := uc.repo.Question().Delete(ctx, questionID); err != nil {
		return goerr.Wrap(err, "failed to delete question", goerr.V(QuestionIDKey, questionID))
	}
	return nil
}

func (uc *CatalogUseCase) validateQuestionRefs(ctx context.Context, question *model.Question) error {
	form, err := uc.repo.Form().Get(ctx, question.FormID)
	if err != nil {
		return goerr.Wrap(err, "failed to get form", goerr.V("form_id", question.FormID))
	}
	if !form.HasSection(question.SectionID) {
		return goerr.Wrap(ErrUnknownSection, "cannot save question",
			goerr.V("form_id", question.FormID),
			goerr.V("section_id", question.SectionID),
		)
	}

	if _, err := uc.repo.Risk().Get(ctx, question.RiskID); err != nil {
		return goerr.Wrap(err, "failed to get risk", goerr.V(RiskIDKey, question.RiskID))
	}

	return nil
}

// CreateRisk registers a risk. The severity level must already exist.
func (uc *CatalogUseCase) CreateRisk(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	if risk.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "risk title is required")
	}

	if err := uc.validateSeverity(ctx, risk.SeverityID); err != nil {
		return nil, err
	}

	created, err := uc.repo.Risk().Create(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}
	return created, nil
}

func (uc *CatalogUseCase) GetRisk(ctx context.Context, riskID types.RiskID) (*model.Risk, error) {
	risk, err := uc.repo.Risk().Get(ctx, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V(RiskIDKey, riskID))
	}
	return risk, nil
}

func (uc *CatalogUseCase) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}
	return risks, nil
}

func (uc *CatalogUseCase) UpdateRisk(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	if risk.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "risk title is required")
	}

	if err := uc.validateSeverity(ctx, risk.SeverityID); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Risk().Update(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V(RiskIDKey, risk.ID))
	}
	return updated, nil
}

func (uc *CatalogUseCase) validateSeverity(ctx context.Context, severityID types.SeverityID) error {
	if _, err := uc.repo.Severity().Get(ctx, severityID); err != nil {
		return goerr.Wrap(ErrUnknownSeverity, "severity lookup failed", goerr.V("severity_id", severityID))
	}
	return nil
}

func (uc *CatalogUseCase) CreateSeverity(ctx context.Context, severity *model.Severity) (*model.Severity, error) {
	if severity.Label == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "severity label is required")
	}

	created, err := uc.repo.Severity().Create(ctx, severity)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create severity")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListSeverities(ctx context.Context) ([]*model.Severity, error) {
	severities, err := uc.repo.Severity().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list severities")
	}
	return severities, nil
}
