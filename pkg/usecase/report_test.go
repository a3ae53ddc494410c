package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"github.com/sesmt-lab/psicorisk/pkg/repository/memory"
	"github.com/sesmt-lab/psicorisk/pkg/usecase"
)

type reportFixture struct {
	uc      *usecase.UseCases
	repo    *memory.Repository
	company *model.Company
	form    *model.Form
	risk1   *model.Risk
	risk2   *model.Risk
	q1      *model.Question
	q2      *model.Question
}

// newReportFixture seeds a company with one form of two questions mapped to
// two distinct risks sharing one severity level.
func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	company, err := uc.Company.CreateCompany(ctx, &model.Company{Name: "Acme"})
	gt.NoError(t, err).Required()

	severity, err := repo.Severity().Create(ctx, &model.Severity{Label: "Harmful", Rank: 2})
	gt.NoError(t, err).Required()

	risk1, err := uc.Catalog.CreateRisk(ctx, &model.Risk{
		Title:      "Work overload",
		SeverityID: severity.ID,
	})
	gt.NoError(t, err).Required()

	risk2, err := uc.Catalog.CreateRisk(ctx, &model.Risk{
		Title:      "Role ambiguity",
		SeverityID: severity.ID,
	})
	gt.NoError(t, err).Required()

	form, err := uc.Catalog.CreateForm(ctx, &model.Form{
		Title:    "Psychosocial assessment",
		Sections: []model.Section{{Title: "Workload", Order: 1}},
	})
	gt.NoError(t, err).Required()
	section := form.Sections[0].ID

	q1, err := uc.Catalog.CreateQuestion(ctx, &model.Question{
		FormID:    form.ID,
		SectionID: section,
		RiskID:    risk1.ID,
		Order:     1,
		Text:      "Do you regularly work past your scheduled hours?",
	})
	gt.NoError(t, err).Required()

	q2, err := uc.Catalog.CreateQuestion(ctx, &model.Question{
		FormID:    form.ID,
		SectionID: section,
		RiskID:    risk2.ID,
		Order:     2,
		Text:      "Are your responsibilities unclear?",
	})
	gt.NoError(t, err).Required()

	return &reportFixture{
		uc:      uc,
		repo:    repo,
		company: company,
		form:    form,
		risk1:   risk1,
		risk2:   risk2,
		q1:      q1,
		q2:      q2,
	}
}

func (f *reportFixture) addEmployee(t *testing.T, name, role string) *model.Employee {
	t.Helper()
	employee, err := f.uc.Company.CreateEmployee(context.Background(), &model.Employee{
		CompanyID: f.company.ID,
		Name:      name,
		Role:      role,
	})
	gt.NoError(t, err).Required()
	return employee
}

func (f *reportFixture) evaluate(t *testing.T, employee *model.Employee, answers []*model.Answer) *model.Evaluation {
	t.Helper()
	ctx := context.Background()

	evaluation, err := f.uc.Evaluation.Start(ctx, f.company.ID, employee.ID, f.form.ID)
	gt.NoError(t, err).Required()

	_, err = f.uc.Evaluation.SaveAnswers(ctx, evaluation.ID, answers, "")
	gt.NoError(t, err).Required()
	return evaluation
}

func answerTo(questionID types.QuestionID, value bool) *model.Answer {
	v := value
	return &model.Answer{QuestionID: questionID, Value: &v}
}

func entryByRisk(report *model.RiskReport, riskID types.RiskID) *model.RiskReportEntry {
	for _, e := range report.Entries {
		if e.RiskID == riskID {
			return e
		}
	}
	return nil
}

func TestBuildRiskReport(t *testing.T) {
	t.Run("single evaluation splits yes and no across risks", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		dev := f.addEmployee(t, "Alice", "Developer")
		f.evaluate(t, dev, []*model.Answer{
			answerTo(f.q1.ID, true),
			answerTo(f.q2.ID, false),
		})

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, report.Source).Equal(types.ReportSourceComputed)
		gt.Array(t, report.Entries).Length(2).Required()

		r1 := entryByRisk(report, f.risk1.ID)
		gt.Value(t, r1).NotNil()
		gt.Number(t, r1.YesCount).Equal(1)
		gt.Number(t, r1.TotalCount).Equal(1)
		gt.Value(t, r1.Probability).Equal("1/1")
		gt.Value(t, r1.Severity).Equal("Harmful")
		gt.Value(t, r1.Roles).Equal([]string{"Developer"})

		r2 := entryByRisk(report, f.risk2.ID)
		gt.Value(t, r2).NotNil()
		gt.Number(t, r2.YesCount).Equal(0)
		gt.Number(t, r2.TotalCount).Equal(1)
		gt.Value(t, r2.Probability).Equal("0/1")
		gt.Value(t, r2.Roles).Equal([]string{model.AllEmployeesRole})
		gt.Value(t, r2.Status).Equal(types.PlanStatusPending)
	})

	t.Run("two evaluations aggregate counts and expose affirming role only", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		dev := f.addEmployee(t, "Alice", "Developer")
		analyst := f.addEmployee(t, "Bob", "Analyst")
		f.evaluate(t, dev, []*model.Answer{answerTo(f.q1.ID, true)})
		f.evaluate(t, analyst, []*model.Answer{answerTo(f.q1.ID, false)})

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, report.Entries).Length(1).Required()

		r1 := entryByRisk(report, f.risk1.ID)
		gt.Value(t, r1.Probability).Equal("1/2")
		gt.Value(t, r1.Roles).Equal([]string{"Developer"})
	})

	t.Run("yes count never exceeds total", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		for i, role := range []string{"Developer", "Analyst", "Manager"} {
			emp := f.addEmployee(t, role, role)
			f.evaluate(t, emp, []*model.Answer{
				answerTo(f.q1.ID, i%2 == 0),
				answerTo(f.q2.ID, true),
			})
		}

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()
		for _, e := range report.Entries {
			gt.Bool(t, e.YesCount <= e.TotalCount).True()
			gt.Bool(t, e.TotalCount > 0).True()
		}
	})

	t.Run("entries cover exactly the risks with recorded answers", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		dev := f.addEmployee(t, "Alice", "Developer")

		// q2 left unanswered, so risk2 must not appear
		f.evaluate(t, dev, []*model.Answer{
			answerTo(f.q1.ID, true),
			{QuestionID: f.q2.ID},
		})

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, report.Entries).Length(1).Required()
		gt.Value(t, report.Entries[0].RiskID).Equal(f.risk1.ID)
	})

	t.Run("answer order does not change counts", func(t *testing.T) {
		ctx := context.Background()

		build := func(reversed bool) *model.RiskReport {
			f := newReportFixture(t)
			dev := f.addEmployee(t, "Alice", "Developer")
			answers := []*model.Answer{
				answerTo(f.q1.ID, true),
				answerTo(f.q2.ID, false),
			}
			if reversed {
				answers[0], answers[1] = answers[1], answers[0]
			}
			f.evaluate(t, dev, answers)

			report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
			gt.NoError(t, err).Required()
			return report
		}

		forward := build(false)
		reversed := build(true)

		gt.Number(t, len(forward.Entries)).Equal(len(reversed.Entries))
		byTitle := map[string]*model.RiskReportEntry{}
		for _, e := range reversed.Entries {
			byTitle[e.Title] = e
		}
		for _, e := range forward.Entries {
			other, ok := byTitle[e.Title]
			gt.Bool(t, ok).True()
			gt.Number(t, other.YesCount).Equal(e.YesCount)
			gt.Number(t, other.TotalCount).Equal(e.TotalCount)
			gt.Value(t, other.Probability).Equal(e.Probability)
		}
	})

	t.Run("company without evaluations gets the reference dataset", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, report.Source).Equal(types.ReportSourceReference)
		gt.Bool(t, report.IsReference()).True()
		gt.Array(t, report.Entries).Length(6)
		for _, e := range report.Entries {
			gt.Value(t, e.Roles).Equal([]string{model.AllEmployeesRole})
			gt.Value(t, e.Status).Equal(types.PlanStatusPending)
		}
	})

	t.Run("mitigation plan fields merge into the matching entry", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		dev := f.addEmployee(t, "Alice", "Developer")
		f.evaluate(t, dev, []*model.Answer{answerTo(f.q1.ID, true)})

		_, err := f.uc.Mitigation.Put(ctx, &model.MitigationPlan{
			CompanyID:       f.company.ID,
			RiskID:          f.risk1.ID,
			Status:          types.PlanStatusConcluded,
			ControlMeasures: "Hire two more developers",
			Deadline:        "2026-12-31",
			Responsible:     "HR",
		})
		gt.NoError(t, err).Required()

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()

		r1 := entryByRisk(report, f.risk1.ID)
		gt.Value(t, r1.Status).Equal(types.PlanStatusConcluded)
		gt.Value(t, r1.ControlMeasures).Equal("Hire two more developers")
		gt.Value(t, r1.Responsible).Equal("HR")
	})

	t.Run("plans are scoped per company", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()

		other, err := f.uc.Company.CreateCompany(ctx, &model.Company{Name: "Globex"})
		gt.NoError(t, err).Required()

		_, err = f.uc.Mitigation.Put(ctx, &model.MitigationPlan{
			CompanyID: other.ID,
			RiskID:    f.risk1.ID,
			Status:    types.PlanStatusConcluded,
		})
		gt.NoError(t, err).Required()

		dev := f.addEmployee(t, "Alice", "Developer")
		f.evaluate(t, dev, []*model.Answer{answerTo(f.q1.ID, true)})

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()

		r1 := entryByRisk(report, f.risk1.ID)
		gt.Value(t, r1.Status).Equal(types.PlanStatusPending)
	})

	t.Run("answers to deleted questions are skipped", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		dev := f.addEmployee(t, "Alice", "Developer")
		f.evaluate(t, dev, []*model.Answer{
			answerTo(f.q1.ID, true),
			answerTo(f.q2.ID, true),
		})

		// bypass the answered-question guard to simulate a stale answer
		gt.NoError(t, f.repo.Question().Delete(ctx, f.q2.ID))

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, report.Entries).Length(1).Required()
		gt.Value(t, report.Entries[0].RiskID).Equal(f.risk1.ID)
	})

	t.Run("roles of multiple affirming employees are sorted and distinct", func(t *testing.T) {
		f := newReportFixture(t)
		ctx := context.Background()
		for _, role := range []string{"Manager", "Developer", "Developer"} {
			emp := f.addEmployee(t, role, role)
			f.evaluate(t, emp, []*model.Answer{answerTo(f.q1.ID, true)})
		}

		report, err := f.uc.Report.BuildRiskReport(ctx, f.company.ID)
		gt.NoError(t, err).Required()

		r1 := entryByRisk(report, f.risk1.ID)
		gt.Value(t, r1.Roles).Equal([]string{"Developer", "Manager"})
	})
}
