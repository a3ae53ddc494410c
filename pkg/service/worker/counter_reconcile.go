package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/utils/errutil"
	"github.com/sesmt-lab/psicorisk/pkg/utils/logging"
)

// CounterReconcileWorker periodically recomputes the denormalized yes/no
// counters of every evaluation from its stored answers. Counters normally
// stay correct through the full-save path; the worker repairs drift left by
// interrupted saves.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type CounterReconcileWorker struct {
	repo     interfaces.Repository
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewCounterReconcileWorker(repo interfaces.Repository, interval time.Duration) *CounterReconcileWorker {
	return &CounterReconcileWorker{
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background reconciliation loop. It does not block.
func (w *CounterReconcileWorker) Start(ctx context.Context) error {
	logging.Default().Info("Counter reconcile worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *CounterReconcileWorker) Stop() {
	logging.Default().Info("Counter reconcile worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Counter reconcile worker stopped")
}

func (w *CounterReconcileWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Reconcile(ctx); err != nil {
				// Keep the worker alive; next tick retries
				_ = errutil.Handle(ctx, err, "Counter reconcile failed")
			}

		case <-w.stopCh:
			logging.Default().Info("Counter reconcile worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Counter reconcile worker context cancelled")
			return
		}
	}
}

// Reconcile performs a single reconciliation cycle across all companies
func (w *CounterReconcileWorker) Reconcile(ctx context.Context) error {
	startTime := time.Now()

	companies, err := w.repo.Company().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list companies")
	}

	var checked, repaired int
	for _, company := range companies {
		c, r, err := w.reconcileCompany(ctx, company.ID)
		if err != nil {
			return goerr.Wrap(err, "failed to reconcile company", goerr.V("company_id", company.ID))
		}
		checked += c
		repaired += r
	}

	logging.Default().Info("Counter reconcile finished",
		"companies", len(companies),
		"checked", checked,
		"repaired", repaired,
		"duration", time.Since(startTime),
	)

	return nil
}

func (w *CounterReconcileWorker) reconcileCompany(ctx context.Context, companyID types.CompanyID) (checked, repaired int, err error) {
	evaluations, err := w.repo.Evaluation().ListByCompany(ctx, companyID)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to list evaluations")
	}
	if len(evaluations) == 0 {
		return 0, 0, nil
	}

	ids := make([]types.EvaluationID, len(evaluations))
	for i, e := range evaluations {
		ids[i] = e.ID
	}

	answers, err := w.repo.Answer().ListByEvaluations(ctx, ids)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to list answers")
	}

	byEvaluation := map[types.EvaluationID][]*model.Answer{}
	for _, a := range answers {
		byEvaluation[a.EvaluationID] = append(byEvaluation[a.EvaluationID], a)
	}

	for _, evaluation := range evaluations {
		checked++
		yes, no := model.CountAnswers(byEvaluation[evaluation.ID])
		if evaluation.YesCount == yes && evaluation.NoCount == no {
			continue
		}

		logging.Default().Warn("Counter drift detected",
			"evaluation_id", evaluation.ID,
			"stored_yes", evaluation.YesCount,
			"stored_no", evaluation.NoCount,
			"actual_yes", yes,
			"actual_no", no,
		)

		evaluation.YesCount = yes
		evaluation.NoCount = no
		if _, err := w.repo.Evaluation().Update(ctx, evaluation); err != nil {
			return checked, repaired, goerr.Wrap(err, "failed to repair counters",
				goerr.V("evaluation_id", evaluation.ID))
		}
		repaired++
	}

	return checked, repaired, nil
}
