package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type sectionRequest struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type formRequest struct {
	Title    string           `json:"title"`
	Sections []sectionRequest `json:"sections"`
}

func (req *formRequest) toModel(id types.FormID) *model.Form {
	form := &model.Form{
		ID:    id,
		Title: req.Title,
	}
	for _, s := range req.Sections {
		form.Sections = append(form.Sections, model.Section{
			ID:    types.SectionID(s.ID),
			Title: s.Title,
			Order: s.Order,
		})
	}
	return form
}

func (s *Server) createForm(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	form, err := s.uc.Catalog.CreateForm(r.Context(), req.toModel(""))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, form)
}

func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	forms, err := s.uc.Catalog.ListForms(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, forms)
}

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	formID := types.FormID(chi.URLParam(r, "formID"))

	detail, err := s.uc.Catalog.GetForm(r.Context(), formID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, detail)
}

func (s *Server) updateForm(w http.ResponseWriter, r *http.Request) {
	formID := types.FormID(chi.URLParam(r, "formID"))

	var req formRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	form, err := s.uc.Catalog.UpdateForm(r.Context(), req.toModel(formID))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, form)
}

func (s *Server) deleteForm(w http.ResponseWriter, r *http.Request) {
	formID := types.FormID(chi.URLParam(r, "formID"))

	if err := s.uc.Catalog.DeleteForm(r.Context(), formID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type questionRequest struct {
	SectionID string   `json:"section_id"`
	RiskID    string   `json:"risk_id"`
	Order     int      `json:"order"`
	Text      string   `json:"text"`
	Options   []string `json:"options,omitempty"`
}

func (s *Server) createQuestion(w http.ResponseWriter, r *http.Request) {
	formID := types.FormID(chi.URLParam(r, "formID"))

	var req questionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	question, err := s.uc.Catalog.CreateQuestion(r.Context(), &model.Question{
		FormID:    formID,
		SectionID: types.SectionID(req.SectionID),
		RiskID:    types.RiskID(req.RiskID),
		Order:     req.Order,
		Text:      req.Text,
		Options:   req.Options,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, question)
}

func (s *Server) updateQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := types.QuestionID(chi.URLParam(r, "questionID"))

	existing, err := s.uc.Catalog.GetQuestion(r.Context(), questionID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req questionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	existing.SectionID = types.SectionID(req.SectionID)
	existing.RiskID = types.RiskID(req.RiskID)
	existing.Order = req.Order
	existing.Text = req.Text
	existing.Options = req.Options

	question, err := s.uc.Catalog.UpdateQuestion(r.Context(), existing)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, question)
}

func (s *Server) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := types.QuestionID(chi.URLParam(r, "questionID"))

	if err := s.uc.Catalog.DeleteQuestion(r.Context(), questionID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type riskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SeverityID  string `json:"severity_id"`
}

func (s *Server) createRisk(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	risk, err := s.uc.Catalog.CreateRisk(r.Context(), &model.Risk{
		Title:       req.Title,
		Description: req.Description,
		SeverityID:  types.SeverityID(req.SeverityID),
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, risk)
}

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	risks, err := s.uc.Catalog.ListRisks(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, risks)
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	risk, err := s.uc.Catalog.GetRisk(r.Context(), riskID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, risk)
}

func (s *Server) updateRisk(w http.ResponseWriter, r *http.Request) {
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	var req riskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	risk, err := s.uc.Catalog.UpdateRisk(r.Context(), &model.Risk{
		ID:          riskID,
		Title:       req.Title,
		Description: req.Description,
		SeverityID:  types.SeverityID(req.SeverityID),
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, risk)
}

type severityRequest struct {
	Label string `json:"label"`
	Rank  int    `json:"rank"`
}

func (s *Server) createSeverity(w http.ResponseWriter, r *http.Request) {
	var req severityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	severity, err := s.uc.Catalog.CreateSeverity(r.Context(), &model.Severity{
		Label: req.Label,
		Rank:  req.Rank,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, severity)
}

func (s *Server) listSeverities(w http.ResponseWriter, r *http.Request) {
	severities, err := s.uc.Catalog.ListSeverities(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, severities)
}
