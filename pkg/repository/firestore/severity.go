package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type severityDocument struct {
	ID    string `firestore:"id"`
	Label string `firestore:"label"`
	Rank  int    `firestore:"rank"`
}

func (d *severityDocument) toModel() *model.Severity {
	return &model.Severity{
		ID:    types.SeverityID(d.ID),
		Label: d.Label,
		Rank:  d.Rank,
	}
}

type severityRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSeverityRepository(client *firestore.Client) *severityRepository {
	return &severityRepository{client: client}
}

func (r *severityRepository) collection() string {
	return prefixed(r.collectionPrefix, "severities")
}

func (r *severityRepository) Create(ctx context.Context, severity *model.Severity) (*model.Severity, error) {
	id := severity.ID
	if id == "" {
		id = types.NewSeverityID()
	}

	doc := &severityDocument{
		ID:    id.String(),
		Label: severity.Label,
		Rank:  severity.Rank,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create severity", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *severityRepository) Get(ctx context.Context, id types.SeverityID) (*model.Severity, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "severity not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get severity", goerr.V("id", id))
	}

	var severityDoc severityDocument
	if err := doc.DataTo(&severityDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal severity", goerr.V("id", id))
	}

	return severityDoc.toModel(), nil
}

func (r *severityRepository) List(ctx context.Context) ([]*model.Severity, error) {
	iter := r.client.Collection(r.collection()).OrderBy("rank", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var severities []*model.Severity
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate severities")
		}

		var severityDoc severityDocument
		if err := doc.DataTo(&severityDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal severity")
		}

		severities = append(severities, severityDoc.toModel())
	}

	return severities, nil
}
