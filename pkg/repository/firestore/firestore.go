package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = types.ErrNotFound

type Firestore struct {
	client     *firestore.Client
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

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.company.collectionPrefix = prefix
		f.employee.collectionPrefix = prefix
		f.form.collectionPrefix = prefix
		f.question.collectionPrefix = prefix
		f.risk.collectionPrefix = prefix
		f.severity.collectionPrefix = prefix
		f.evaluation.collectionPrefix = prefix
		f.answer.collectionPrefix = prefix
		f.plan.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		company:    newCompanyRepository(client),
		employee:   newEmployeeRepository(client),
		form:       newFormRepository(client),
		question:   newQuestionRepository(client),
		risk:       newRiskRepository(client),
		severity:   newSeverityRepository(client),
		evaluation: newEvaluationRepository(client),
		answer:     newAnswerRepository(client),
		plan:       newMitigationPlanRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Company() interfaces.CompanyRepository {
	return f.company
}

func (f *Firestore) Employee() interfaces.EmployeeRepository {
	return f.employee
}

func (f *Firestore) Form() interfaces.FormRepository {
	return f.form
}

func (f *Firestore) Question() interfaces.QuestionRepository {
	return f.question
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Severity() interfaces.SeverityRepository {
	return f.severity
}

func (f *Firestore) Evaluation() interfaces.EvaluationRepository {
	return f.evaluation
}

func (f *Firestore) Answer() interfaces.AnswerRepository {
	return f.answer
}

func (f *Firestore) MitigationPlan() interfaces.MitigationPlanRepository {
	return f.plan
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func prefixed(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
