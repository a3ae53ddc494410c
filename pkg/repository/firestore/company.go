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

type companyDocument struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d *companyDocument) toModel() *model.Company {
	return &model.Company{
		ID:        types.CompanyID(d.ID),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type companyRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCompanyRepository(client *firestore.Client) *companyRepository {
	return &companyRepository{client: client}
}

func (r *companyRepository) collection() string {
	return prefixed(r.collectionPrefix, "companies")
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	id := company.ID
	if id == "" {
		id = types.NewCompanyID()
	}

	now := time.Now().UTC()
	doc := &companyDocument{
		ID:        id.String(),
		Name:      company.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create company", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *companyRepository) Get(ctx context.Context, id types.CompanyID) (*model.Company, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get company", goerr.V("id", id))
	}

	var companyDoc companyDocument
	if err := doc.DataTo(&companyDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal company", goerr.V("id", id))
	}

	return companyDoc.toModel(), nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var companies []*model.Company
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate companies")
		}

		var companyDoc companyDocument
		if err := doc.DataTo(&companyDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal company")
		}

		companies = append(companies, companyDoc.toModel())
	}

	return companies, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) (*model.Company, error) {
	docRef := r.client.Collection(r.collection()).Doc(company.ID.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", company.ID))
		}
		return nil, goerr.Wrap(err, "failed to get company", goerr.V("id", company.ID))
	}

	var existing companyDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal company", goerr.V("id", company.ID))
	}

	updated := &companyDocument{
		ID:        existing.ID,
		Name:      company.Name,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update company", goerr.V("id", company.ID))
	}

	return updated.toModel(), nil
}

func (r *companyRepository) Delete(ctx context.Context, id types.CompanyID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get company", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete company", goerr.V("id", id))
	}

	return nil
}
