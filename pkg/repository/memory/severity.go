package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

type severityRepository struct {
	mu         sync.RWMutex
	severities map[types.SeverityID]*model.Severity
}

func newSeverityRepository() *severityRepository {
	return &severityRepository{
		severities: make(map[types.SeverityID]*model.Severity),
	}
}

func copySeverity(s *model.Severity) *model.Severity {
	copied := *s
	return &copied
}

func (r *severityRepository) Create(ctx context.Context, severity *model.Severity) (*model.Severity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copySeverity(severity)
	if created.ID == "" {
		created.ID = types.NewSeverityID()
	}

	r.severities[created.ID] = created
	return copySeverity(created), nil
}

func (r *severityRepository) Get(ctx context.Context, id types.SeverityID) (*model.Severity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	severity, exists := r.severities[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "severity not found", goerr.V("id", id))
	}

	return copySeverity(severity), nil
}

func (r *severityRepository) List(ctx context.Context) ([]*model.Severity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Severity, 0, len(r.severities))
	for _, s := range r.severities {
		result = append(result, copySeverity(s))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Rank < result[j].Rank
	})

	return result, nil
}
