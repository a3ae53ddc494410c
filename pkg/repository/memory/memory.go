package memory

import (
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = types.ErrNotFound

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	company    *companyRepository
	employee   *employeeRepository
	form       *formRepository
	question   *questionRepository
	risk       *riskRepository
	severity   *severityRepository
	evaluation *evaluationRepository
	answer     *answerRepository
	plan       *mitigationPlanRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		company:    newCompanyRepository(),
		employee:   newEmployeeRepository(),
		form:       newFormRepository(),
		question:   newQuestionRepository(),
		risk:       newRiskRepository(),
		severity:   newSeverityRepository(),
		evaluation: newEvaluationRepository(),
		answer:     newAnswerRepository(),
		plan:       newMitigationPlanRepository(),
	}
}

func (m *Memory) Company() interfaces.CompanyRepository {
	return m.company
}

func (m *Memory) Employee() interfaces.EmployeeRepository {
	return m.employee
}

func (m *Memory) Form() interfaces.FormRepository {
	return m.form
}

func (m *Memory) Question() interfaces.QuestionRepository {
	return m.question
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Severity() interfaces.SeverityRepository {
	return m.severity
}

func (m *Memory) Evaluation() interfaces.EvaluationRepository {
	return m.evaluation
}

func (m *Memory) Answer() interfaces.AnswerRepository {
	return m.answer
}

func (m *Memory) MitigationPlan() interfaces.MitigationPlanRepository {
	return m.plan
}

func (m *Memory) Close() error {
	return nil
}
