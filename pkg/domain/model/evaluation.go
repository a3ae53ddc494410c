package model

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// Evaluation is one employee's in-progress or completed questionnaire
// instance. YesCount/NoCount are denormalized from the answer set on every
// full save.
type Evaluation struct {
	ID         types.EvaluationID `json:"id"`
	CompanyID  types.CompanyID    `json:"company_id"`
	EmployeeID types.EmployeeID   `json:"employee_id"`
	FormID     types.FormID       `json:"form_id"`
	YesCount   int                `json:"yes_count"`
	NoCount    int                `json:"no_count"`
	Completed  bool               `json:"completed"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Answer is one employee's response to one question within one evaluation.
// Value nil means the question was left unanswered. Answers are owned by
// their evaluation and replaced wholesale on every full save.
type Answer struct {
	EvaluationID    types.EvaluationID `json:"evaluation_id"`
	QuestionID      types.QuestionID   `json:"question_id"`
	Value           *bool              `json:"value"`
	Observation     string             `json:"observation,omitempty"`
	SelectedOptions []string           `json:"selected_options,omitempty"`
}

// Affirmative reports whether the answer is a recorded "yes"
func (a *Answer) Affirmative() bool {
	return a.Value != nil && *a.Value
}

// Recorded reports whether the answer carries a value at all
func (a *Answer) Recorded() bool {
	return a.Value != nil
}

// CountAnswers returns the number of yes and no answers in the given set,
// ignoring unanswered entries.
func CountAnswers(answers []*Answer) (yes, no int) {
	for _, a := range answers {
		if !a.Recorded() {
			continue
		}
		if *a.Value {
			yes++
		} else {
			no++
		}
	}
	return yes, no
}
