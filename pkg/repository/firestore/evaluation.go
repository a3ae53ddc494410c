package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type evaluationDocument struct {
	ID         string    `firestore:"id"`
	CompanyID  string    `firestore:"company_id"`
	EmployeeID string    `firestore:"employee_id"`
	FormID     string    `firestore:"form_id"`
	YesCount   int       `firestore:"yes_count"`
	NoCount    int       `firestore:"no_count"`
	Completed  bool      `firestore:"completed"`
	Notes      string    `firestore:"notes"`
	CreatedAt  time.Time `firestore:"created_at"`
	UpdatedAt  time.Time `firestore:"updated_at"`
}

func (d *evaluationDocument) toModel() *model.Evaluation {
	return &model.Evaluation{
		ID:         types.EvaluationID(d.ID),
		CompanyID:  types.CompanyID(d.CompanyID),
		EmployeeID: types.EmployeeID(d.EmployeeID),
		FormID:     types.FormID(d.FormID),
		YesCount:   d.YesCount,
		NoCount:    d.NoCount,
		Completed:  d.Completed,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type evaluationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEvaluationRepository(client *firestore.Client) *evaluationRepository {
	return &evaluationRepository{client: client}
}

func (r *evaluationRepository) collection() string {
	return prefixed(r.collectionPrefix, "evaluations")
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) (*model.Evaluation, error) {
	id := evaluation.ID
	if id == "" {
		id = types.NewEvaluationID()
	}

	now := time.Now().UTC()
	doc := &evaluationDocument{
		ID:         id.String(),
		CompanyID:  evaluation.CompanyID.String(),
		EmployeeID: evaluation.EmployeeID.String(),
		FormID:     evaluation.FormID.String(),
		YesCount:   evaluation.YesCount,
		NoCount:    evaluation.NoCount,
		Completed:  evaluation.Completed,
		Notes:      evaluation.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create evaluation", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *evaluationRepository) Get(ctx context.Context, id types.EvaluationID) (*model.Evaluation, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "evaluation not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get evaluation", goerr.V("id", id))
	}

	var evaluationDoc evaluationDocument
	if err := doc.DataTo(&evaluationDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal evaluation", goerr.V("id", id))
	}

	return evaluationDoc.toModel(), nil
}

func (r *evaluationRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Evaluation, error) {
	iter := r.client.Collection(r.collection()).
		Where("company_id", "==", companyID.String()).
		Documents(ctx)
	defer iter.Stop()

	evaluations := []*model.Evaluation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate evaluations", goerr.V("companyID", companyID))
		}

		var evaluationDoc evaluationDocument
		if err := doc.DataTo(&evaluationDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal evaluation")
		}

		evaluations = append(evaluations, evaluationDoc.toModel())
	}

	return evaluations, nil
}

func (r *evaluationRepository) Update(ctx context.Context, evaluation *model.Evaluation) (*model.Evaluation, error) {
	docRef := r.client.Collection(r.collection()).Doc(evaluation.ID.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "evaluation not found", goerr.V("id", evaluation.ID))
		}
		return nil, goerr.Wrap(err, "failed to get evaluation", goerr.V("id", evaluation.ID))
	}

	var existing evaluationDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal evaluation", goerr.V("id", evaluation.ID))
	}

	updated := &evaluationDocument{
		ID:         existing.ID,
		CompanyID:  existing.CompanyID,
		EmployeeID: existing.EmployeeID,
		FormID:     existing.FormID,
		YesCount:   evaluation.YesCount,
		NoCount:    evaluation.NoCount,
		Completed:  evaluation.Completed,
		Notes:      evaluation.Notes,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  time.Now().UTC(),
	}

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update evaluation", goerr.V("id", evaluation.ID))
	}

	return updated.toModel(), nil
}

func (r *evaluationRepository) Delete(ctx context.Context, id types.EvaluationID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "evaluation not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get evaluation", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete evaluation", goerr.V("id", id))
	}

	return nil
}
