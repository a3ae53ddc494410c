package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// CompanyID represents the unique identifier for a company
type CompanyID string

// EmployeeID represents the unique identifier for an employee
type EmployeeID string

// FormID represents the unique identifier for a questionnaire form
type FormID string

// SectionID represents the unique identifier for a form section
type SectionID string

// QuestionID represents the unique identifier for a question
type QuestionID string

// RiskID represents the unique identifier for a risk
type RiskID string

// SeverityID represents the unique identifier for a severity level
type SeverityID string

// EvaluationID represents the unique identifier for an evaluation
type EvaluationID string

// PlanID represents the unique identifier for a mitigation plan
type PlanID string

func NewCompanyID() CompanyID       { return CompanyID(uuid.NewString()) }
func NewEmployeeID() EmployeeID     { return EmployeeID(uuid.NewString()) }
func NewFormID() FormID             { return FormID(uuid.NewString()) }
func NewSectionID() SectionID       { return SectionID(uuid.NewString()) }
func NewQuestionID() QuestionID     { return QuestionID(uuid.NewString()) }
func NewRiskID() RiskID             { return RiskID(uuid.NewString()) }
func NewSeverityID() SeverityID     { return SeverityID(uuid.NewString()) }
func NewEvaluationID() EvaluationID { return EvaluationID(uuid.NewString()) }
func NewPlanID() PlanID             { return PlanID(uuid.NewString()) }

func (x CompanyID) String() string    { return string(x) }
func (x EmployeeID) String() string   { return string(x) }
func (x FormID) String() string       { return string(x) }
func (x SectionID) String() string    { return string(x) }
func (x QuestionID) String() string   { return string(x) }
func (x RiskID) String() string       { return string(x) }
func (x SeverityID) String() string   { return string(x) }
func (x EvaluationID) String() string { return string(x) }
func (x PlanID) String() string       { return string(x) }

// Validate checks if the CompanyID is non-empty
func (x CompanyID) Validate() error {
	if x == "" {
		return goerr.New("company ID cannot be empty")
	}
	return nil
}

// Validate checks if the EmployeeID is non-empty
func (x EmployeeID) Validate() error {
	if x == "" {
		return goerr.New("employee ID cannot be empty")
	}
	return nil
}

// Validate checks if the EvaluationID is non-empty
func (x EvaluationID) Validate() error {
	if x == "" {
		return goerr.New("evaluation ID cannot be empty")
	}
	return nil
}

// Validate checks if the FormID is non-empty
func (x FormID) Validate() error {
	if x == "" {
		return goerr.New("form ID cannot be empty")
	}
	return nil
}

// Validate checks if the SectionID is non-empty
func (x SectionID) Validate() error {
	if x == "" {
		return goerr.New("section ID cannot be empty")
	}
	return nil
}

// Validate checks if the QuestionID is non-empty
func (x QuestionID) Validate() error {
	if x == "" {
		return goerr.New("question ID cannot be empty")
	}
	return nil
}

// Validate checks if the RiskID is non-empty
func (x RiskID) Validate() error {
	if x == "" {
		return goerr.New("risk ID cannot be empty")
	}
	return nil
}

// Validate checks if the SeverityID is non-empty
func (x SeverityID) Validate() error {
	if x == "" {
		return goerr.New("severity ID cannot be empty")
	}
	return nil
}

// Validate checks if the PlanID is non-empty
func (x PlanID) Validate() error {
	if x == "" {
		return goerr.New("plan ID cannot be empty")
	}
	return nil
}
