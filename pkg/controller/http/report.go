package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

func (s *Server) getRiskReport(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	report, err := s.uc.Report.BuildRiskReport(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}
