package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Company() CompanyRepository
	Employee() EmployeeRepository
	Form() FormRepository
	Question() QuestionRepository
	Risk() RiskRepository
	Severity() SeverityRepository
	Evaluation() EvaluationRepository
	Answer() AnswerRepository
	MitigationPlan() MitigationPlanRepository

	Close() error
}
