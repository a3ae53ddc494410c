package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

func TestReferenceReport(t *testing.T) {
	report := model.NewReferenceReport()

	gt.Bool(t, report.IsReference()).True()
	gt.Value(t, report.Source).Equal(types.ReportSourceReference)
	gt.Array(t, report.Entries).Length(6)

	for _, entry := range report.Entries {
		gt.Value(t, entry.Roles).Equal([]string{model.AllEmployeesRole})
		gt.Value(t, entry.Status).Equal(types.PlanStatusPending)
		gt.String(t, entry.RiskID.String()).HasPrefix("reference-")
	}
}

func TestFormatProbability(t *testing.T) {
	gt.Value(t, model.FormatProbability(1, 2)).Equal("1/2")
	gt.Value(t, model.FormatProbability(0, 1)).Equal("0/1")
	gt.Value(t, model.FormatProbability(0, 0)).Equal("0/0")
}

func TestCountAnswers(t *testing.T) {
	yes := true
	no := false

	answers := []*model.Answer{
		{QuestionID: "q1", Value: &yes},
		{QuestionID: "q2", Value: &no},
		{QuestionID: "q3", Value: nil},
		{QuestionID: "q4", Value: &yes},
	}

	yesCount, noCount := model.CountAnswers(answers)
	gt.Number(t, yesCount).Equal(2)
	gt.Number(t, noCount).Equal(1)
}

func TestAnswerPredicates(t *testing.T) {
	yes := true
	no := false

	gt.Bool(t, (&model.Answer{Value: &yes}).Affirmative()).True()
	gt.Bool(t, (&model.Answer{Value: &no}).Affirmative()).False()
	gt.Bool(t, (&model.Answer{}).Affirmative()).False()

	gt.Bool(t, (&model.Answer{Value: &no}).Recorded()).True()
	gt.Bool(t, (&model.Answer{}).Recorded()).False()
}
