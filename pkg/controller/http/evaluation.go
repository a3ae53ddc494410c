package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type startEvaluationRequest struct {
	CompanyID  string `json:"company_id"`
	EmployeeID string `json:"employee_id"`
	FormID     string `json:"form_id"`
}

func (s *Server) startEvaluation(w http.ResponseWriter, r *http.Request) {
	var req startEvaluationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	evaluation, err := s.uc.Evaluation.Start(r.Context(),
		types.CompanyID(req.CompanyID),
		types.EmployeeID(req.EmployeeID),
		types.FormID(req.FormID),
	)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, evaluation)
}

type answerRequest struct {
	QuestionID      string   `json:"question_id"`
	Value           *bool    `json:"value"`
	Observation     string   `json:"observation,omitempty"`
	SelectedOptions []string `json:"selected_options,omitempty"`
}

type saveAnswersRequest struct {
	Answers []answerRequest `json:"answers"`
	Notes   string          `json:"notes,omitempty"`
}

func (s *Server) saveAnswers(w http.ResponseWriter, r *http.Request) {
	evaluationID := types.EvaluationID(chi.URLParam(r, "evaluationID"))

	var req saveAnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answers := make([]*model.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, &model.Answer{
			QuestionID:      types.QuestionID(a.QuestionID),
			Value:           a.Value,
			Observation:     a.Observation,
			SelectedOptions: a.SelectedOptions,
		})
	}

	evaluation, err := s.uc.Evaluation.SaveAnswers(r.Context(), evaluationID, answers, req.Notes)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, evaluation)
}

func (s *Server) completeEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID := types.EvaluationID(chi.URLParam(r, "evaluationID"))

	evaluation, err := s.uc.Evaluation.Complete(r.Context(), evaluationID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, evaluation)
}

func (s *Server) getEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID := types.EvaluationID(chi.URLParam(r, "evaluationID"))

	detail, err := s.uc.Evaluation.Get(r.Context(), evaluationID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, detail)
}

func (s *Server) listEvaluations(w http.ResponseWriter, r *http.Request) {
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	evaluations, err := s.uc.Evaluation.ListByCompany(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, evaluations)
}

func (s *Server) deleteEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID := types.EvaluationID(chi.URLParam(r, "evaluationID"))

	if err := s.uc.Evaluation.Delete(r.Context(), evaluationID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
