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

type formRepository struct {
	mu    sync.RWMutex
	forms map[types.FormID]*model.Form
}

func newFormRepository() *formRepository {
	return &formRepository{
		forms: make(map[types.FormID]*model.Form),
	}
}

func copyForm(f *model.Form) *model.Form {
	copied := *f
	if f.Sections != nil {
		copied.Sections = make([]model.Section, len(f.Sections))
		copy(copied.Sections, f.Sections)
	}
	return &copied
}

func (r *formRepository) Create(ctx context.Context, form *model.Form) (*model.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyForm(form)
	if created.ID == "" {
		created.ID = types.NewFormID()
	}
	for i := range created.Sections {
		if created.Sections[i].ID == "" {
			created.Sections[i].ID = types.NewSectionID()
		}
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.forms[created.ID] = created
	return copyForm(created), nil
}

func (r *formRepository) Get(ctx context.Context, id types.FormID) (*model.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	form, exists := r.forms[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
	}

	return copyForm(form), nil
}

func (r *formRepository) List(ctx context.Context) ([]*model.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Form, 0, len(r.forms))
	for _, f := range r.forms {
		result = append(result, copyForm(f))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *formRepository) Update(ctx context.Context, form *model.Form) (*model.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.forms[form.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", form.ID))
	}

	updated := copyForm(form)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.forms[updated.ID] = updated
	return copyForm(updated), nil
}

func (r *formRepository) Delete(ctx context.Context, id types.FormID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.forms[id]; !exists {
		return goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
	}

	delete(r.forms, id)
	return nil
}
