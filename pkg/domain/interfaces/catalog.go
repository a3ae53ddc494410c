package interfaces

import (
	"context"

	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type FormRepository interface {
	// Create creates a new form with a generated ID
	Create(ctx context.Context, form *model.Form) (*model.Form, error)

	// Get retrieves a form by ID
	Get(ctx context.Context, id types.FormID) (*model.Form, error)

	// List retrieves all forms
	List(ctx context.Context) ([]*model.Form, error)

	// Update updates an existing form
	Update(ctx context.Context, form *model.Form) (*model.Form, error)

	// Delete deletes a form by ID
	Delete(ctx context.Context, id types.FormID) error
}

type QuestionRepository interface {
	// Create creates a new question with a generated ID
	Create(ctx context.Context, question *model.Question) (*model.Question, error)

	// Get retrieves a question by ID
	Get(ctx context.Context, id types.QuestionID) (*model.Question, error)

	// ListByForm retrieves all questions of a form ordered by Order
	ListByForm(ctx context.Context, formID types.FormID) ([]*model.Question, error)

	// ListByIDs retrieves the questions matching the given IDs. Missing IDs
	// are skipped, not reported as errors.
	ListByIDs(ctx context.Context, ids []types.QuestionID) ([]*model.Question, error)

	// Update updates an existing question
	Update(ctx context.Context, question *model.Question) (*model.Question, error)

	// Delete deletes a question by ID
	Delete(ctx context.Context, id types.QuestionID) error
}

type RiskRepository interface {
	// Create creates a new risk with a generated ID
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID
	Get(ctx context.Context, id types.RiskID) (*model.Risk, error)

	// List retrieves all risks
	List(ctx context.Context) ([]*model.Risk, error)

	// ListByIDs retrieves the risks matching the given IDs. Missing IDs are
	// skipped, not reported as errors.
	ListByIDs(ctx context.Context, ids []types.RiskID) ([]*model.Risk, error)

	// Update updates an existing risk
	Update(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Delete deletes a risk by ID
	Delete(ctx context.Context, id types.RiskID) error
}

type SeverityRepository interface {
	// Create creates a new severity level with a generated ID
	Create(ctx context.Context, severity *model.Severity) (*model.Severity, error)

	// Get retrieves a severity level by ID
	Get(ctx context.Context, id types.SeverityID) (*model.Severity, error)

	// List retrieves all severity levels ordered by Rank
	List(ctx context.Context) ([]*model.Severity, error)
}
