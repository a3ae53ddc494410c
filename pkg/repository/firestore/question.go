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

type questionDocument struct {
	ID        string    `firestore:"id"`
	FormID    string    `firestore:"form_id"`
	SectionID string    `firestore:"section_id"`
	RiskID    string    `firestore:"risk_id"`
	Order     int       `firestore:"order"`
	Text      string    `firestore:"text"`
	Options   []string  `firestore:"options"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d *questionDocument) toModel() *model.Question {
	return &model.Question{
		ID:        types.QuestionID(d.ID),
		FormID:    types.FormID(d.FormID),
		SectionID: types.SectionID(d.SectionID),
		RiskID:    types.RiskID(d.RiskID),
		Order:     d.Order,
		Text:      d.Text,
		Options:   d.Options,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type questionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newQuestionRepository(client *firestore.Client) *questionRepository {
	return &questionRepository{client: client}
}

func (r *questionRepository) collection() string {
	return prefixed(r.collectionPrefix, "questions")
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) (*model.Question, error) {
	id := question.ID
	if id == "" {
		id = types.NewQuestionID()
	}

	now := time.Now().UTC()
	doc := &questionDocument{
		ID:        id.String(),
		FormID:    question.FormID.String(),
		SectionID: question.SectionID.String(),
		RiskID:    question.RiskID.String(),
		Order:     question.Order,
		Text:      question.Text,
		Options:   question.Options,
		CreatedAt: now,
		UpdatedAt: now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create question", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *questionRepository) Get(ctx context.Context, id types.QuestionID) (*model.Question, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "question not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get question", goerr.V("id", id))
	}

	var questionDoc questionDocument
	if err := doc.DataTo(&questionDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal question", goerr.V("id", id))
	}

	return questionDoc.toModel(), nil
}

func (r *questionRepository) ListByForm(ctx context.Context, formID types.FormID) ([]*model.Question, error) {
	iter := r.client.Collection(r.collection()).
		Where("form_id", "==", formID.String()).
		OrderBy("order", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	questions := []*model.Question{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate questions", goerr.V("formID", formID))
		}

		var questionDoc questionDocument
		if err := doc.DataTo(&questionDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal question")
		}

		questions = append(questions, questionDoc.toModel())
	}

	return questions, nil
}

func (r *questionRepository) ListByIDs(ctx context.Context, ids []types.QuestionID) ([]*model.Question, error) {
	if len(ids) == 0 {
		return []*model.Question{}, nil
	}

	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection(r.collection()).Doc(id.String())
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get questions by IDs")
	}

	questions := []*model.Question{}
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}

		var questionDoc questionDocument
		if err := doc.DataTo(&questionDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal question")
		}

		questions = append(questions, questionDoc.toModel())
	}

	return questions, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) (*model.Question, error) {
	docRef := r.client.Collection(r.collection()).Doc(question.ID.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "question not found", goerr.V("id", question.ID))
		}
		return nil, goerr.Wrap(err, "failed to get question", goerr.V("id", question.ID))
	}

	var existing questionDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal question", goerr.V("id", question.ID))
	}

	updated := &questionDocument{
		ID:        existing.ID,
		FormID:    existing.FormID,
		SectionID: question.SectionID.String(),
		RiskID:    question.RiskID.String(),
		Order:     question.Order,
		Text:      question.Text,
		Options:   question.Options,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update question", goerr.V("id", question.ID))
	}

	return updated.toModel(), nil
}

func (r *questionRepository) Delete(ctx context.Context, id types.QuestionID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "question not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get question", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete question", goerr.V("id", id))
	}

	return nil
}
