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

type mitigationPlanDocument struct {
	ID              string    `firestore:"id"`
	CompanyID       string    `firestore:"company_id"`
	RiskID          string    `firestore:"risk_id"`
	Status          string    `firestore:"status"`
	ControlMeasures string    `firestore:"control_measures"`
	Deadline        string    `firestore:"deadline"`
	Responsible     string    `firestore:"responsible"`
	CreatedAt       time.Time `firestore:"created_at"`
	UpdatedAt       time.Time `firestore:"updated_at"`
}

func (d *mitigationPlanDocument) toModel() *model.MitigationPlan {
	return &model.MitigationPlan{
		ID:              types.PlanID(d.ID),
		CompanyID:       types.CompanyID(d.CompanyID),
		RiskID:          types.RiskID(d.RiskID),
		Status:          types.PlanStatus(d.Status),
		ControlMeasures: d.ControlMeasures,
		Deadline:        d.Deadline,
		Responsible:     d.Responsible,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type mitigationPlanRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMitigationPlanRepository(client *firestore.Client) *mitigationPlanRepository {
	return &mitigationPlanRepository{client: client}
}

func (r *mitigationPlanRepository) collection() string {
	return prefixed(r.collectionPrefix, "mitigation_plans")
}

// planDocID enforces the one-plan-per-(company, risk) rule at the storage
// level: the document ID is derived from the pair.
func planDocID(companyID types.CompanyID, riskID types.RiskID) string {
	return companyID.String() + "_" + riskID.String()
}

func (r *mitigationPlanRepository) Put(ctx context.Context, plan *model.MitigationPlan) (*model.MitigationPlan, error) {
	docRef := r.client.Collection(r.collection()).Doc(planDocID(plan.CompanyID, plan.RiskID))

	now := time.Now().UTC()
	id := plan.ID
	createdAt := now

	existing, err := docRef.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return nil, goerr.Wrap(err, "failed to get mitigation plan",
			goerr.V("companyID", plan.CompanyID), goerr.V("riskID", plan.RiskID))
	}
	if err == nil {
		var existingDoc mitigationPlanDocument
		if err := existing.DataTo(&existingDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal mitigation plan")
		}
		id = types.PlanID(existingDoc.ID)
		createdAt = existingDoc.CreatedAt
	}
	if id == "" {
		id = types.NewPlanID()
	}

	doc := &mitigationPlanDocument{
		ID:              id.String(),
		CompanyID:       plan.CompanyID.String(),
		RiskID:          plan.RiskID.String(),
		Status:          plan.Status.Normalize().String(),
		ControlMeasures: plan.ControlMeasures,
		Deadline:        plan.Deadline,
		Responsible:     plan.Responsible,
		CreatedAt:       createdAt,
		UpdatedAt:       now,
	}

	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to put mitigation plan",
			goerr.V("companyID", plan.CompanyID), goerr.V("riskID", plan.RiskID))
	}

	return doc.toModel(), nil
}

func (r *mitigationPlanRepository) GetByCompanyRisk(ctx context.Context, companyID types.CompanyID, riskID types.RiskID) (*model.MitigationPlan, error) {
	docRef := r.client.Collection(r.collection()).Doc(planDocID(companyID, riskID))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "mitigation plan not found",
				goerr.V("companyID", companyID), goerr.V("riskID", riskID))
		}
		return nil, goerr.Wrap(err, "failed to get mitigation plan",
			goerr.V("companyID", companyID), goerr.V("riskID", riskID))
	}

	var planDoc mitigationPlanDocument
	if err := doc.DataTo(&planDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal mitigation plan")
	}

	return planDoc.toModel(), nil
}

func (r *mitigationPlanRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.MitigationPlan, error) {
	iter := r.client.Collection(r.collection()).
		Where("company_id", "==", companyID.String()).
		Documents(ctx)
	defer iter.Stop()

	plans := []*model.MitigationPlan{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate mitigation plans", goerr.V("companyID", companyID))
		}

		var planDoc mitigationPlanDocument
		if err := doc.DataTo(&planDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal mitigation plan")
		}

		plans = append(plans, planDoc.toModel())
	}

	return plans, nil
}

func (r *mitigationPlanRepository) Delete(ctx context.Context, id types.PlanID) error {
	iter := r.client.Collection(r.collection()).
		Where("id", "==", id.String()).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return goerr.Wrap(ErrNotFound, "mitigation plan not found", goerr.V("id", id))
	}
	if err != nil {
		return goerr.Wrap(err, "failed to find mitigation plan", goerr.V("id", id))
	}

	if _, err := doc.Ref.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete mitigation plan", goerr.V("id", id))
	}

	return nil
}
