package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	server "github.com/sesmt-lab/psicorisk/pkg/controller/http"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/repository/memory"
	"github.com/sesmt-lab/psicorisk/pkg/usecase"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	return server.New(usecase.New(memory.New()))
}

func doJSON(t *testing.T, s *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v)).Required()
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
}

func TestCompanyEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("create and fetch company", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/companies", map[string]string{"name": "Acme"})
		gt.Number(t, rec.Code).Equal(http.StatusCreated)
		created := decodeBody[*model.Company](t, rec)
		gt.Value(t, created.Name).Equal("Acme")

		rec = doJSON(t, s, http.MethodGet, "/api/companies/"+string(created.ID), nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		fetched := decodeBody[*model.Company](t, rec)
		gt.Value(t, fetched.ID).Equal(created.ID)
	})

	t.Run("unknown company returns 404", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/companies/"+types.NewCompanyID().String(), nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/companies", map[string]string{})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

// seedCatalog provisions a severity, risk, form and question through the API
// and returns their IDs.
func seedCatalog(t *testing.T, s *server.Server) (companyID, employeeID, formID, questionID, riskID string) {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/api/companies", map[string]string{"name": "Acme"})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	company := decodeBody[*model.Company](t, rec)

	rec = doJSON(t, s, http.MethodPost, "/api/companies/"+string(company.ID)+"/employees", map[string]string{
		"name": "Alice",
		"role": "Developer",
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	employee := decodeBody[*model.Employee](t, rec)

	rec = doJSON(t, s, http.MethodPost, "/api/severities", map[string]any{"label": "Harmful", "rank": 2})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	severity := decodeBody[*model.Severity](t, rec)

	rec = doJSON(t, s, http.MethodPost, "/api/risks", map[string]string{
		"title":       "Work overload",
		"severity_id": string(severity.ID),
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	risk := decodeBody[*model.Risk](t, rec)

	rec = doJSON(t, s, http.MethodPost, "/api/forms", map[string]any{
		"title":    "Psychosocial assessment",
		"sections": []map[string]any{{"title": "Workload", "order": 1}},
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	form := decodeBody[*model.Form](t, rec)
	gt.Array(t, form.Sections).Length(1).Required()

	rec = doJSON(t, s, http.MethodPost, "/api/forms/"+string(form.ID)+"/questions", map[string]any{
		"section_id": string(form.Sections[0].ID),
		"risk_id":    string(risk.ID),
		"order":      1,
		"text":       "Do you regularly work past your scheduled hours?",
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	question := decodeBody[*model.Question](t, rec)

	return string(company.ID), string(employee.ID), string(form.ID), string(question.ID), string(risk.ID)
}

func TestEvaluationFlow(t *testing.T) {
	s := newTestServer(t)
	companyID, employeeID, formID, questionID, riskID := seedCatalog(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/evaluations", map[string]string{
		"company_id":  companyID,
		"employee_id": employeeID,
		"form_id":     formID,
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	evaluation := decodeBody[*model.Evaluation](t, rec)

	yes := true
	rec = doJSON(t, s, http.MethodPut, "/api/evaluations/"+string(evaluation.ID)+"/answers", map[string]any{
		"answers": []map[string]any{{"question_id": questionID, "value": &yes}},
	})
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	saved := decodeBody[*model.Evaluation](t, rec)
	gt.Number(t, saved.YesCount).Equal(1)

	rec = doJSON(t, s, http.MethodPost, "/api/evaluations/"+string(evaluation.ID)+"/complete", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	// further saves rejected
	rec = doJSON(t, s, http.MethodPut, "/api/evaluations/"+string(evaluation.ID)+"/answers", map[string]any{
		"answers": []map[string]any{{"question_id": questionID, "value": &yes}},
	})
	gt.Number(t, rec.Code).Equal(http.StatusConflict)

	// answered question cannot be deleted
	rec = doJSON(t, s, http.MethodDelete, "/api/questions/"+questionID, nil)
	gt.Number(t, rec.Code).Equal(http.StatusConflict)

	// nor re-pointed to another risk
	rec = doJSON(t, s, http.MethodGet, "/api/forms/"+formID, nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	detail := decodeBody[*usecase.FormDetail](t, rec)
	gt.Array(t, detail.Form.Sections).Length(1).Required()

	rec = doJSON(t, s, http.MethodGet, "/api/severities", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	severities := decodeBody[[]*model.Severity](t, rec)
	gt.Array(t, severities).Length(1).Required()

	rec = doJSON(t, s, http.MethodPost, "/api/risks", map[string]string{
		"title":       "Role ambiguity",
		"severity_id": string(severities[0].ID),
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	otherRisk := decodeBody[*model.Risk](t, rec)

	rec = doJSON(t, s, http.MethodPut, "/api/questions/"+questionID, map[string]any{
		"section_id": string(detail.Form.Sections[0].ID),
		"risk_id":    string(otherRisk.ID),
		"order":      1,
		"text":       "Do you regularly work past your scheduled hours?",
	})
	gt.Number(t, rec.Code).Equal(http.StatusConflict)

	t.Run("report reflects the recorded answers", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/companies/"+companyID+"/report", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		report := decodeBody[*model.RiskReport](t, rec)
		gt.Value(t, report.Source).Equal(types.ReportSourceComputed)
		gt.Array(t, report.Entries).Length(1).Required()
		gt.Value(t, string(report.Entries[0].RiskID)).Equal(riskID)
		gt.Value(t, report.Entries[0].Probability).Equal("1/1")
		gt.Value(t, report.Entries[0].Roles).Equal([]string{"Developer"})
	})

	t.Run("mitigation plan shows up in the report", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPut,
			fmt.Sprintf("/api/companies/%s/plans/%s", companyID, riskID),
			map[string]string{
				"status":           "in_progress",
				"control_measures": "Weekly workload review",
				"responsible":      "HR",
			})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, s, http.MethodGet, "/api/companies/"+companyID+"/report", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		report := decodeBody[*model.RiskReport](t, rec)
		gt.Value(t, report.Entries[0].Status).Equal(types.PlanStatusInProgress)
		gt.Value(t, report.Entries[0].ControlMeasures).Equal("Weekly workload review")
	})
}

func TestReportFallback(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/companies", map[string]string{"name": "Acme"})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)
	company := decodeBody[*model.Company](t, rec)

	rec = doJSON(t, s, http.MethodGet, "/api/companies/"+string(company.ID)+"/report", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	report := decodeBody[*model.RiskReport](t, rec)
	gt.Value(t, report.Source).Equal(types.ReportSourceReference)
	gt.Array(t, report.Entries).Length(6)
}
