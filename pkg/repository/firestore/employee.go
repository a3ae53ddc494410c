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

type employeeDocument struct {
	ID            string    `firestore:"id"`
	CompanyID     string    `firestore:"company_id"`
	Name          string    `firestore:"name"`
	Role          string    `firestore:"role"`
	DepartmentIDs []string  `firestore:"department_ids"`
	CreatedAt     time.Time `firestore:"created_at"`
	UpdatedAt     time.Time `firestore:"updated_at"`
}

func (d *employeeDocument) toModel() *model.Employee {
	return &model.Employee{
		ID:            types.EmployeeID(d.ID),
		CompanyID:     types.CompanyID(d.CompanyID),
		Name:          d.Name,
		Role:          d.Role,
		DepartmentIDs: d.DepartmentIDs,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type employeeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEmployeeRepository(client *firestore.Client) *employeeRepository {
	return &employeeRepository{client: client}
}

func (r *employeeRepository) collection() string {
	return prefixed(r.collectionPrefix, "employees")
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	id := employee.ID
	if id == "" {
		id = types.NewEmployeeID()
	}

	now := time.Now().UTC()
	doc := &employeeDocument{
		ID:            id.String(),
		CompanyID:     employee.CompanyID.String(),
		Name:          employee.Name,
		Role:          employee.Role,
		DepartmentIDs: employee.DepartmentIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create employee", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *employeeRepository) Get(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get employee", goerr.V("id", id))
	}

	var employeeDoc employeeDocument
	if err := doc.DataTo(&employeeDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal employee", goerr.V("id", id))
	}

	return employeeDoc.toModel(), nil
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Employee, error) {
	iter := r.client.Collection(r.collection()).
		Where("company_id", "==", companyID.String()).
		Documents(ctx)
	defer iter.Stop()

	employees := []*model.Employee{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate employees", goerr.V("companyID", companyID))
		}

		var employeeDoc employeeDocument
		if err := doc.DataTo(&employeeDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal employee")
		}

		employees = append(employees, employeeDoc.toModel())
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	docRef := r.client.Collection(r.collection()).Doc(employee.ID.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", employee.ID))
		}
		return nil, goerr.Wrap(err, "failed to get employee", goerr.V("id", employee.ID))
	}

	var existing employeeDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal employee", goerr.V("id", employee.ID))
	}

	updated := &employeeDocument{
		ID:            existing.ID,
		CompanyID:     existing.CompanyID,
		Name:          employee.Name,
		Role:          employee.Role,
		DepartmentIDs: employee.DepartmentIDs,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update employee", goerr.V("id", employee.ID))
	}

	return updated.toModel(), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id types.EmployeeID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get employee", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete employee", goerr.V("id", id))
	}

	return nil
}
