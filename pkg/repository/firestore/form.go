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

type sectionDocument struct {
	ID    string `firestore:"id"`
	Title string `firestore:"title"`
	Order int    `firestore:"order"`
}

type formDocument struct {
	ID        string            `firestore:"id"`
	Title     string            `firestore:"title"`
	Sections  []sectionDocument `firestore:"sections"`
	CreatedAt time.Time         `firestore:"created_at"`
	UpdatedAt time.Time         `firestore:"updated_at"`
}

func (d *formDocument) toModel() *model.Form {
	sections := make([]model.Section, len(d.Sections))
	for i, s := range d.Sections {
		sections[i] = model.Section{
			ID:    types.SectionID(s.ID),
			Title: s.Title,
			Order: s.Order,
		}
	}
	return &model.Form{
		ID:        types.FormID(d.ID),
		Title:     d.Title,
		Sections:  sections,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func sectionDocuments(sections []model.Section) []sectionDocument {
	docs := make([]sectionDocument, len(sections))
	for i, s := range sections {
		id := s.ID
		if id == "" {
			id = types.NewSectionID()
		}
		docs[i] = sectionDocument{
			ID:    id.String(),
			Title: s.Title,
			Order: s.Order,
		}
	}
	return docs
}

type formRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFormRepository(client *firestore.Client) *formRepository {
	return &formRepository{client: client}
}

func (r *formRepository) collection() string {
	return prefixed(r.collectionPrefix, "forms")
}

func (r *formRepository) Create(ctx context.Context, form *model.Form) (*model.Form, error) {
	id := form.ID
	if id == "" {
		id = types.NewFormID()
	}

	now := time.Now().UTC()
	doc := &formDocument{
		ID:        id.String(),
		Title:     form.Title,
		Sections:  sectionDocuments(form.Sections),
		CreatedAt: now,
		UpdatedAt: now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create form", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *formRepository) Get(ctx context.Context, id types.FormID) (*model.Form, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get form", goerr.V("id", id))
	}

	var formDoc formDocument
	if err := doc.DataTo(&formDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal form", goerr.V("id", id))
	}

	return formDoc.toModel(), nil
}

func (r *formRepository) List(ctx context.Context) ([]*model.Form, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var forms []*model.Form
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate forms")
		}

		var formDoc formDocument
		if err := doc.DataTo(&formDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal form")
		}

		forms = append(forms, formDoc.toModel())
	}

	return forms, nil
}

func (r *formRepository) Update(ctx context.Context, form *model.Form) (*model.Form, error) {
	docRef := r.client.Collection(r.collection()).Doc(form.ID.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", form.ID))
		}
		return nil, goerr.Wrap(err, "failed to get form", goerr.V("id", form.ID))
	}

	var existing formDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal form", goerr.V("id", form.ID))
	}

	updated := &formDocument{
		ID:        existing.ID,
		Title:     form.Title,
		Sections:  sectionDocuments(form.Sections),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update form", goerr.V("id", form.ID))
	}

	return updated.toModel(), nil
}

func (r *formRepository) Delete(ctx context.Context, id types.FormID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get form", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete form", goerr.V("id", id))
	}

	return nil
}
