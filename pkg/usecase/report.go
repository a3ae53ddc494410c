package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/interfaces"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/utils/cache"
	"golang.org/x/sync/errgroup"
)

// ReportUseCase aggregates raw per-question answers across a company's
// evaluations into the risk exposure report. All reads are bulk: the whole
// run issues a bounded number of round trips regardless of how many
// evaluations or risks exist.
type ReportUseCase struct {
	repo      interfaces.Repository
	roleCache *cache.Cache[types.CompanyID, map[types.EmployeeID]string]
}

func NewReportUseCase(repo interfaces.Repository, roleCache *cache.Cache[types.CompanyID, map[types.EmployeeID]string]) *ReportUseCase {
	return &ReportUseCase{
		repo:      repo,
		roleCache: roleCache,
	}
}

// catalogEntry is the resolved question → risk → severity chain. Questions
// that cannot be resolved end-to-end never get an entry and are excluded
// from aggregation.
type catalogEntry struct {
	riskID          types.RiskID
	riskTitle       string
	riskDescription string
	severityLabel   string
}

// riskGroup accumulates per-risk counts across all questions mapped to the
// risk. Title and severity come from the first-seen catalog entry.
type riskGroup struct {
	riskID      types.RiskID
	title       string
	description string
	severity    string
	yesCount    int
	totalCount  int
}

// BuildRiskReport runs the aggregation pipeline for one company. A company
// with no evaluations, no recorded answers or no resolvable questions gets
// the fixed reference dataset, tagged as such via RiskReport.Source.
func (uc *ReportUseCase) BuildRiskReport(ctx context.Context, companyID types.CompanyID) (*model.RiskReport, error) {
	if err := companyID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid company ID")
	}

	var evaluations []*model.Evaluation
	var answers []*model.Answer
	var roles map[types.EmployeeID]string

	// Answer and employee reads are independent and run concurrently. The
	// catalog read depends on the answer list and follows.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		evaluations, answers, err = uc.loadAnswers(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = uc.roleIndex(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load report inputs", goerr.V(CompanyIDKey, companyID))
	}

	catalog, err := uc.loadCatalog(ctx, answers)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load question catalog", goerr.V(CompanyIDKey, companyID))
	}

	groups, order := groupByRisk(answers, catalog)
	if len(order) == 0 {
		return model.NewReferenceReport(), nil
	}

	exposure := resolveExposure(evaluations, answers, catalog, roles)

	plans, err := uc.planIndex(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load mitigation plans", goerr.V(CompanyIDKey, companyID))
	}

	entries := make([]*model.RiskReportEntry, 0, len(order))
	for _, riskID := range order {
		group := groups[riskID]

		entry := &model.RiskReportEntry{
			RiskID:      group.riskID,
			Title:       group.title,
			Description: group.description,
			Roles:       exposureRoles(exposure[riskID]),
			YesCount:    group.yesCount,
			TotalCount:  group.totalCount,
			Probability: model.FormatProbability(group.yesCount, group.totalCount),
			Severity:    group.severity,
			Status:      types.PlanStatusPending,
		}

		if plan, ok := plans[riskID]; ok {
			entry.Status = plan.Status.Normalize()
			entry.ControlMeasures = plan.ControlMeasures
			entry.Deadline = plan.Deadline
			entry.Responsible = plan.Responsible
		}

		entries = append(entries, entry)
	}

	return &model.RiskReport{
		Source:  types.ReportSourceComputed,
		Entries: entries,
	}, nil
}

// loadAnswers resolves the company's evaluations and fetches every answer
// row of those evaluations in one bulk read.
func (uc *ReportUseCase) loadAnswers(ctx context.Context, companyID types.CompanyID) ([]*model.Evaluation, []*model.Answer, error) {
	evaluations, err := uc.repo.Evaluation().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list evaluations")
	}
	if len(evaluations) == 0 {
		return evaluations, nil, nil
	}

	ids := make([]types.EvaluationID, len(evaluations))
	for i, e := range evaluations {
		ids[i] = e.ID
	}

	answers, err := uc.repo.Answer().ListByEvaluations(ctx, ids)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list answers")
	}

	return evaluations, answers, nil
}

// roleIndex maps the company's employee IDs to job-role names, served
// through the TTL cache when one is configured.
func (uc *ReportUseCase) roleIndex(ctx context.Context, companyID types.CompanyID) (map[types.EmployeeID]string, error) {
	if uc.roleCache != nil {
		if roles, ok := uc.roleCache.Get(companyID); ok {
			return roles, nil
		}
	}

	employees, err := uc.repo.Employee().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list employees")
	}

	roles := make(map[types.EmployeeID]string, len(employees))
	for _, e := range employees {
		roles[e.ID] = e.Role
	}

	if uc.roleCache != nil {
		uc.roleCache.Set(companyID, roles)
	}

	return roles, nil
}

// InvalidateRoleCache drops the cached role index for the company. Called
// after employee changes so the next report sees fresh role names.
func (uc *ReportUseCase) InvalidateRoleCache(companyID types.CompanyID) {
	if uc.roleCache != nil {
		uc.roleCache.Delete(companyID)
	}
}

// loadCatalog fetches the distinct questions appearing in the answer list
// together with their risk and severity, eagerly. Questions whose risk or
// severity does not resolve are left out of the returned map.
func (uc *ReportUseCase) loadCatalog(ctx context.Context, answers []*model.Answer) (map[types.QuestionID]catalogEntry, error) {
	seen := map[types.QuestionID]bool{}
	var questionIDs []types.QuestionID
	for _, a := range answers {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			questionIDs = append(questionIDs, a.QuestionID)
		}
	}
	if len(questionIDs) == 0 {
		return map[types.QuestionID]catalogEntry{}, nil
	}

	questions, err := uc.repo.Question().ListByIDs(ctx, questionIDs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list questions")
	}

	riskSeen := map[types.RiskID]bool{}
	var riskIDs []types.RiskID
	for _, q := range questions {
		if !riskSeen[q.RiskID] {
			riskSeen[q.RiskID] = true
			riskIDs = append(riskIDs, q.RiskID)
		}
	}

	risks, err := uc.repo.Risk().ListByIDs(ctx, riskIDs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}
	riskIndex := make(map[types.RiskID]*model.Risk, len(risks))
	for _, r := range risks {
		riskIndex[r.ID] = r
	}

	severities, err := uc.repo.Severity().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list severities")
	}
	severityIndex := make(map[types.SeverityID]*model.Severity, len(severities))
	for _, s := range severities {
		severityIndex[s.ID] = s
	}

	catalog := make(map[types.QuestionID]catalogEntry, len(questions))
	for _, q := range questions {
		risk, ok := riskIndex[q.RiskID]
		if !ok {
			continue
		}
		severity, ok := severityIndex[risk.SeverityID]
		if !ok {
			continue
		}
		catalog[q.ID] = catalogEntry{
			riskID:          risk.ID,
			riskTitle:       risk.Title,
			riskDescription: risk.Description,
			severityLabel:   severity.Label,
		}
	}

	return catalog, nil
}

// groupByRisk folds recorded answers into per-risk yes/total counts. The
// returned order is the sequence in which risks were first encountered;
// answers without a catalog entry or without a recorded value contribute
// nothing.
func groupByRisk(answers []*model.Answer, catalog map[types.QuestionID]catalogEntry) (map[types.RiskID]*riskGroup, []types.RiskID) {
	groups := map[types.RiskID]*riskGroup{}
	var order []types.RiskID

	for _, a := range answers {
		if !a.Recorded() {
			continue
		}
		entry, ok := catalog[a.QuestionID]
		if !ok {
			continue
		}

		group, ok := groups[entry.riskID]
		if !ok {
			group = &riskGroup{
				riskID:      entry.riskID,
				title:       entry.riskTitle,
				description: entry.riskDescription,
				severity:    entry.severityLabel,
			}
			groups[entry.riskID] = group
			order = append(order, entry.riskID)
		}

		group.totalCount++
		if a.Affirmative() {
			group.yesCount++
		}
	}

	return groups, order
}

// resolveExposure computes, for each risk, the distinct job-role names whose
// employees answered yes to at least one of the risk's questions. This is a
// single pass over the loaded answers: evaluation → affirmed risks, joined
// with evaluation → employee → role.
func resolveExposure(evaluations []*model.Evaluation, answers []*model.Answer, catalog map[types.QuestionID]catalogEntry, roles map[types.EmployeeID]string) map[types.RiskID]map[string]bool {
	affirmed := map[types.EvaluationID]map[types.RiskID]bool{}
	for _, a := range answers {
		if !a.Affirmative() {
			continue
		}
		entry, ok := catalog[a.QuestionID]
		if !ok {
			continue
		}
		if affirmed[a.EvaluationID] == nil {
			affirmed[a.EvaluationID] = map[types.RiskID]bool{}
		}
		affirmed[a.EvaluationID][entry.riskID] = true
	}

	exposure := map[types.RiskID]map[string]bool{}
	for _, evaluation := range evaluations {
		risks, ok := affirmed[evaluation.ID]
		if !ok {
			continue
		}
		role, ok := roles[evaluation.EmployeeID]
		if !ok || role == "" {
			continue
		}
		for riskID := range risks {
			if exposure[riskID] == nil {
				exposure[riskID] = map[string]bool{}
			}
			exposure[riskID][role] = true
		}
	}

	return exposure
}

// exposureRoles renders an exposure set as a sorted role list. An empty set
// becomes the "applies to all employees" sentinel rather than an empty
// slice.
func exposureRoles(set map[string]bool) []string {
	if len(set) == 0 {
		return []string{model.AllEmployeesRole}
	}

	roles := make([]string, 0, len(set))
	for role := range set {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	return roles
}

// planIndex loads the company's mitigation plans keyed by risk
func (uc *ReportUseCase) planIndex(ctx context.Context, companyID types.CompanyID) (map[types.RiskID]*model.MitigationPlan, error) {
	plans, err := uc.repo.MitigationPlan().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list mitigation plans")
	}

	index := make(map[types.RiskID]*model.MitigationPlan, len(plans))
	for _, p := range plans {
		index[p.RiskID] = p
	}

	return index, nil
}
