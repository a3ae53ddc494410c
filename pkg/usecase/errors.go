package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidArgument    = goerr.New("invalid argument")
	ErrFormHasQuestions   = goerr.New("form has questions and cannot be deleted")
	ErrQuestionHasAnswers = goerr.New("question has recorded answers and cannot be deleted")
	ErrQuestionAnswered   = goerr.New("question has recorded answers; only order and text may change")
	ErrQuestionWrongForm  = goerr.New("answer references a question outside the evaluation's form")
	ErrUnknownSeverity    = goerr.New("severity not found")
	ErrUnknownSection     = goerr.New("section does not belong to the form")

	ErrEvaluationCompleted = goerr.New("evaluation is already completed")
)

// Keys attached to wrapped errors for log output
const (
	CompanyIDKey    = "company_id"
	EvaluationIDKey = "evaluation_id"
	QuestionIDKey   = "question_id"
	RiskIDKey       = "risk_id"
)
