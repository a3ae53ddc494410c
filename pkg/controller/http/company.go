package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type companyRequest struct {
	Name string `json:"name"`
}

func (s *Server) createCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := s.uc.Company.CreateCompany(r.Context(), &model.Company{Name: req.Name})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, company)
}

func (s *Server) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.uc.Company.ListCompanies(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, companies)
}

func (s *Server) getCompany(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	company, err := s.uc.Company.GetCompany(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, company)
}

func (s *Server) updateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	var req companyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := s.uc.Company.UpdateCompany(r.Context(), &model.Company{
		ID:   companyID,
		Name: req.Name,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, company)
}

func (s *Server) deleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	if err := s.uc.Company.DeleteCompany(r.Context(), companyID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type employeeRequest struct {
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	DepartmentIDs []string `json:"department_ids,omitempty"`
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	var req employeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	employee, err := s.uc.Company.CreateEmployee(r.Context(), &model.Employee{
		CompanyID:     companyID,
		Name:          req.Name,
		Role:          req.Role,
		DepartmentIDs: req.DepartmentIDs,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, employee)
}

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	employees, err := s.uc.Company.ListEmployees(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, employees)
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := types.EmployeeID(chi.URLParam(r, "employeeID"))

	employee, err := s.uc.Company.GetEmployee(r.Context(), employeeID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, employee)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := types.EmployeeID(chi.URLParam(r, "employeeID"))

	existing, err := s.uc.Company.GetEmployee(r.Context(), employeeID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req employeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	existing.Name = req.Name
	existing.Role = req.Role
	existing.DepartmentIDs = req.DepartmentIDs

	employee, err := s.uc.Company.UpdateEmployee(r.Context(), existing)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, employee)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := types.EmployeeID(chi.URLParam(r, "employeeID"))

	if err := s.uc.Company.DeleteEmployee(r.Context(), employeeID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
