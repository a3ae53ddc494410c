package usecase

import (
	"time"

	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/utils/cache"
)

// Default TTL for the per-company employee role index used by report runs
const defaultRoleCacheTTL = 5 * time.Minute

type UseCases struct {
	repo interfaces.Repository

	Company    *CompanyUseCase
	Catalog    *CatalogUseCase
	Evaluation *EvaluationUseCase
	Mitigation *MitigationUseCase
	Report     *ReportUseCase
}

type Option func(*UseCases)

// WithRoleCache overrides the employee role cache used by report runs
func WithRoleCache(c *cache.Cache[types.CompanyID, map[types.EmployeeID]string]) Option {
	return func(uc *UseCases) {
		uc.Report.roleCache = c
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		Company:    NewCompanyUseCase(repo),
		Catalog:    NewCatalogUseCase(repo),
		Evaluation: NewEvaluationUseCase(repo),
		Mitigation: NewMitigationUseCase(repo),
		Report:     NewReportUseCase(repo, cache.New[types.CompanyID, map[types.EmployeeID]string](defaultRoleCacheTTL)),
	}

	for _, opt := range opts {
		opt(uc)
	}

	// Employee writes invalidate the cached role index so the next report
	// run sees fresh role names.
	uc.Company.onEmployeeChange = uc.Report.InvalidateRoleCache

	return uc
}
