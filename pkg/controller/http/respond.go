package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/usecase"
	"github.com/sesmt-lab/psicorisk/pkg/utils/errutil"
)

func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data) //nolint:errcheck // header already committed
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode request body"), http.StatusBadRequest)
		return false
	}
	return true
}

// handleError maps domain errors to HTTP status codes and writes the
// response. Missing entities become 404, integrity violations 409 and
// validation failures 400.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrQuestionHasAnswers),
		errors.Is(err, usecase.ErrQuestionAnswered),
		errors.Is(err, usecase.ErrFormHasQuestions),
		errors.Is(err, usecase.ErrEvaluationCompleted):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidArgument),
		errors.Is(err, usecase.ErrQuestionWrongForm),
		errors.Is(err, usecase.ErrUnknownSection),
		errors.Is(err, usecase.ErrUnknownSeverity):
		status = http.StatusBadRequest
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}
