package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sesmt-lab/psicorisk/pkg/usecase"
	"github.com/sesmt-lab/psicorisk/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck // header already committed
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Post("/", s.createCompany)
			r.Get("/", s.listCompanies)
			r.Route("/{companyID}", func(r chi.Router) {
				r.Get("/", s.getCompany)
				r.Put("/", s.updateCompany)
				r.Delete("/", s.deleteCompany)
				r.Get("/report", s.getRiskReport)
				r.Post("/employees", s.createEmployee)
				r.Get("/employees", s.listEmployees)
				r.Get("/evaluations", s.listEvaluations)
				r.Get("/plans", s.listMitigationPlans)
				r.Put("/plans/{riskID}", s.putMitigationPlan)
				r.Get("/plans/{riskID}", s.getMitigationPlan)
			})
		})

		r.Route("/employees/{employeeID}", func(r chi.Router) {
			r.Get("/", s.getEmployee)
			r.Put("/", s.updateEmployee)
			r.Delete("/", s.deleteEmployee)
		})

		r.Route("/evaluations", func(r chi.Router) {
			r.Post("/", s.startEvaluation)
			r.Route("/{evaluationID}", func(r chi.Router) {
				r.Get("/", s.getEvaluation)
				r.Delete("/", s.deleteEvaluation)
				r.Put("/answers", s.saveAnswers)
				r.Post("/complete", s.completeEvaluation)
			})
		})

		r.Route("/forms", func(r chi.Router) {
			r.Post("/", s.createForm)
			r.Get("/", s.listForms)
			r.Route("/{formID}", func(r chi.Router) {
				r.Get("/", s.getForm)
				r.Put("/", s.updateForm)
				r.Delete("/", s.deleteForm)
				r.Post("/questions", s.createQuestion)
			})
		})

		r.Route("/questions/{questionID}", func(r chi.Router) {
			r.Put("/", s.updateQuestion)
			r.Delete("/", s.deleteQuestion)
		})

		r.Route("/risks", func(r chi.Router) {
			r.Post("/", s.createRisk)
			r.Get("/", s.listRisks)
			r.Get("/{riskID}", s.getRisk)
			r.Put("/{riskID}", s.updateRisk)
		})

		r.Route("/severities", func(r chi.Router) {
			r.Post("/", s.createSeverity)
			r.Get("/", s.listSeverities)
		})

		r.Delete("/plans/{planID}", s.deleteMitigationPlan)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
