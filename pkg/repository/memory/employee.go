package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type employeeRepository struct {
	mu        sync.RWMutex
	employees map[types.EmployeeID]*model.Employee
}

func newEmployeeRepository() *employeeRepository {
	return &employeeRepository{
		employees: make(map[types.EmployeeID]*model.Employee),
	}
}

func copyEmployee(e *model.Employee) *model.Employee {
	copied := *e
	if e.DepartmentIDs != nil {
		copied.DepartmentIDs = make([]string, len(e.DepartmentIDs))
		copy(copied.DepartmentIDs, e.DepartmentIDs)
	}
	return &copied
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEmployee(employee)
	if created.ID == "" {
		created.ID = types.NewEmployeeID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.employees[created.ID] = created
	return copyEmployee(created), nil
}

func (r *employeeRepository) Get(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.employees[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
	}

	return copyEmployee(employee), nil
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Employee{}
	for _, e := range r.employees {
		if e.CompanyID == companyID {
			result = append(result, copyEmployee(e))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.employees[employee.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", employee.ID))
	}

	updated := copyEmployee(employee)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.employees[updated.ID] = updated
	return copyEmployee(updated), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id types.EmployeeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[id]; !exists {
		return goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
	}

	delete(r.employees, id)
	return nil
}
