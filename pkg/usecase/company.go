package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// CompanyUseCase manages companies and their employees. Employee writes
// notify onEmployeeChange so cached role indexes can be dropped.
type CompanyUseCase struct {
	repo             interfaces.Repository
	onEmployeeChange func(types.CompanyID)
}

func NewCompanyUseCase(repo interfaces.Repository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

func (uc *CompanyUseCase) CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	if company.Name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "company name is required")
	}

	created, err := uc.repo.Company().Create(ctx, company)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create company")
	}
	return created, nil
}

func (uc *CompanyUseCase) GetCompany(ctx context.Context, companyID types.CompanyID) (*model.Company, error) {
	company, err := uc.repo.Company().Get(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get company", goerr.V(CompanyIDKey, companyID))
	}
	return company, nil
}

func (uc *CompanyUseCase) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	companies, err := uc.repo.Company().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list companies")
	}
	return companies, nil
}

func (uc *CompanyUseCase) UpdateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	if company.Name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "company name is required")
	}

	updated, err := uc.repo.Company().Update(ctx, company)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update company", goerr.V(CompanyIDKey, company.ID))
	}
	return updated, nil
}

func (uc *CompanyUseCase) DeleteCompany(ctx context.Context, companyID types.CompanyID) error {
	if err := uc.repo.Company().Delete(ctx, companyID); err != nil {
		return goerr.Wrap(err, "failed to delete company", goerr.V(CompanyIDKey, companyID))
	}
	return nil
}

// CreateEmployee adds an employee to an existing company
func (uc *CompanyUseCase) CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if employee.Name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "employee name is required")
	}
	if err := employee.CompanyID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid company ID")
	}

	if _, err := uc.repo.Company().Get(ctx, employee.CompanyID); err != nil {
		return nil, goerr.Wrap(err, "failed to get company", goerr.V(CompanyIDKey, employee.CompanyID))
	}

	created, err := uc.repo.Employee().Create(ctx, employee)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create employee", goerr.V(CompanyIDKey, employee.CompanyID))
	}

	uc.notifyEmployeeChange(created.CompanyID)
	return created, nil
}

func (uc *CompanyUseCase) GetEmployee(ctx context.Context, employeeID types.EmployeeID) (*model.Employee, error) {
	employee, err := uc.repo.Employee().Get(ctx, employeeID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get employee", goerr.V("employee_id", employeeID))
	}
	return employee, nil
}

func (uc *CompanyUseCase) ListEmployees(ctx context.Context, companyID types.CompanyID) ([]*model.Employee, error) {
	employees, err := uc.repo.Employee().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list employees", goerr.V(CompanyIDKey, companyID))
	}
	return employees, nil
}

func (uc *CompanyUseCase) UpdateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if employee.Name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "employee name is required")
	}

	updated, err := uc.repo.Employee().Update(ctx, employee)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update employee", goerr.V("employee_id", employee.ID))
	}

	uc.notifyEmployeeChange(updated.CompanyID)
	return updated, nil
}

func (uc *CompanyUseCase) DeleteEmployee(ctx context.Context, employeeID types.EmployeeID) error {
	employee, err := uc.repo.Employee().Get(ctx, employeeID)
	if err != nil {
		return goerr.Wrap(err, "failed to get employee", goerr.V("employee_id", employeeID))
	}

	if err := uc.repo.Employee().Delete(ctx, employeeID); err != nil {
		return goerr.Wrap(err, "failed to delete employee", goerr.V("employee_id", employeeID))
	}

	uc.notifyEmployeeChange(employee.CompanyID)
	return nil
}

func (uc *CompanyUseCase) notifyEmployeeChange(companyID types.CompanyID) {
	if uc.onEmployeeChange != nil {
		uc.onEmployeeChange(companyID)
	}
}
