package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type companyRepository struct {
	mu        sync.RWMutex
	companies map[types.CompanyID]*model.Company
}

func newCompanyRepository() *companyRepository {
	return &companyRepository{
		companies: make(map[types.CompanyID]*model.Company),
	}
}

func copyCompany(c *model.Company) *model.Company {
	copied := *c
	return &copied
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyCompany(company)
	if created.ID == "" {
		created.ID = types.NewCompanyID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.companies[created.ID] = created
	return copyCompany(created), nil
}

func (r *companyRepository) Get(ctx context.Context, id types.CompanyID) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, exists := r.companies[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
	}

	return copyCompany(company), nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Company, 0, len(r.companies))
	for _, c := range r.companies {
		result = append(result, copyCompany(c))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.companies[company.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", company.ID))
	}

	updated := copyCompany(company)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.companies[updated.ID] = updated
	return copyCompany(updated), nil
}

func (r *companyRepository) Delete(ctx context.Context, id types.CompanyID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.companies[id]; !exists {
		return goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
	}

	delete(r.companies, id)
	return nil
}
