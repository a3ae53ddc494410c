package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type mitigationPlanRequest struct {
	Status          string `json:"status"`
	ControlMeasures string `json:"control_measures"`
	Deadline        string `json:"deadline"`
	Responsible     string `json:"responsible"`
}

func (s *Server) putMitigationPlan(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	var req mitigationPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, err := s.uc.Mitigation.Put(r.Context(), &model.MitigationPlan{
		CompanyID:       companyID,
		RiskID:          riskID,
		Status:          types.PlanStatus(req.Status),
		ControlMeasures: req.ControlMeasures,
		Deadline:        req.Deadline,
		Responsible:     req.Responsible,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, plan)
}

func (s *Server) getMitigationPlan(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	plan, err := s.uc.Mitigation.Get(r.Context(), companyID, riskID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, plan)
}

func (s *Server) listMitigationPlans(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	plans, err := s.uc.Mitigation.ListByCompany(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, plans)
}

func (s *Server) deleteMitigationPlan(w http.ResponseWriter, r *http.Request) {
	planID := types.PlanID(chi.URLParam(r, "planID"))

	if err := s.uc.Mitigation.Delete(r.Context(), planID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
