package interfaces

import (
	"context"

	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type CompanyRepository interface {
	// Create creates a new company with a generated ID
	Create(ctx context.Context, company *model.Company) (*model.Company, error)

	// Get retrieves a company by ID
	Get(ctx context.Context, id types.CompanyID) (*model.Company, error)

	// List retrieves all companies
	List(ctx context.Context) ([]*model.Company, error)

	// Update updates an existing company
	Update(ctx context.Context, company *model.Company) (*model.Company, error)

	// Delete deletes a company by ID
	Delete(ctx context.Context, id types.CompanyID) error
}

type EmployeeRepository interface {
	// Create creates a new employee with a generated ID
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)

	// Get retrieves an employee by ID
	Get(ctx context.Context, id types.EmployeeID) (*model.Employee, error)

	// ListByCompany retrieves all employees of a company
	ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, employee *model.Employee) (*model.Employee, error)

	// Delete deletes an employee by ID
	Delete(ctx context.Context, id types.EmployeeID) error
}
