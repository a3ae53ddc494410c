package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sesmt-lab/psicorisk/pkg/domain/model"
	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
	"google.golang.org/api/iterator"
)

// Firestore limits "in" filters to 30 values per query
const inQueryLimit = 30

type answerDocument struct {
	EvaluationID    string   `firestore:"evaluation_id"`
	QuestionID      string   `firestore:"question_id"`
	Answered        bool     `firestore:"answered"`
	Value           bool     `firestore:"value"`
	Observation     string   `firestore:"observation"`
	SelectedOptions []string `firestore:"selected_options"`
}

func (d *answerDocument) toModel() *model.Answer {
	answer := &model.Answer{
		EvaluationID:    types.EvaluationID(d.EvaluationID),
		QuestionID:      types.QuestionID(d.QuestionID),
		Observation:     d.Observation,
		SelectedOptions: d.SelectedOptions,
	}
	if d.Answered {
		v := d.Value
		answer.Value = &v
	}
	return answer
}

func answerToDocument(a *model.Answer) *answerDocument {
	doc := &answerDocument{
		EvaluationID:    a.EvaluationID.String(),
		QuestionID:      a.QuestionID.String(),
		Observation:     a.Observation,
		SelectedOptions: a.SelectedOptions,
	}
	if a.Value != nil {
		doc.Answered = true
		doc.Value = *a.Value
	}
	return doc
}

type answerRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAnswerRepository(client *firestore.Client) *answerRepository {
	return &answerRepository{client: client}
}

func (r *answerRepository) collection() string {
	return prefixed(r.collectionPrefix, "answers")
}

func (r *answerRepository) ReplaceByEvaluation(ctx context.Context, evaluationID types.EvaluationID, answers []*model.Answer) error {
	if err := r.DeleteByEvaluation(ctx, evaluationID); err != nil {
		return err
	}
	if len(answers) == 0 {
		return nil
	}

	// BulkWriter handles the 500-writes-per-batch limit internally
	col := r.client.Collection(r.collection())
	bulkWriter := r.client.BulkWriter(ctx)
	defer bulkWriter.End()

	for _, a := range answers {
		doc := answerToDocument(a)
		doc.EvaluationID = evaluationID.String()
		if _, err := bulkWriter.Create(col.NewDoc(), doc); err != nil {
			return goerr.Wrap(err, "failed to add Create operation to bulk writer",
				goerr.V("evaluationID", evaluationID), goerr.V("questionID", a.QuestionID))
		}
	}

	bulkWriter.Flush()

	return nil
}

func (r *answerRepository) ListByEvaluation(ctx context.Context, evaluationID types.EvaluationID) ([]*model.Answer, error) {
	iter := r.client.Collection(r.collection()).
		Where("evaluation_id", "==", evaluationID.String()).
		Documents(ctx)
	defer iter.Stop()

	answers := []*model.Answer{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate answers", goerr.V("evaluationID", evaluationID))
		}

		var answerDoc answerDocument
		if err := doc.DataTo(&answerDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal answer")
		}

		answers = append(answers, answerDoc.toModel())
	}

	return answers, nil
}

func (r *answerRepository) ListByEvaluations(ctx context.Context, evaluationIDs []types.EvaluationID) ([]*model.Answer, error) {
	answers := []*model.Answer{}

	for start := 0; start < len(evaluationIDs); start += inQueryLimit {
		end := start + inQueryLimit
		if end > len(evaluationIDs) {
			end = len(evaluationIDs)
		}

		chunk := make([]string, 0, end-start)
		for _, id := range evaluationIDs[start:end] {
			chunk = append(chunk, id.String())
		}

		iter := r.client.Collection(r.collection()).
			Where("evaluation_id", "in", chunk).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return nil, goerr.Wrap(err, "failed to iterate answers")
			}

			var answerDoc answerDocument
			if err := doc.DataTo(&answerDoc); err != nil {
				iter.Stop()
				return nil, goerr.Wrap(err, "failed to unmarshal answer")
			}

			answers = append(answers, answerDoc.toModel())
		}
		iter.Stop()
	}

	return answers, nil
}

func (r *answerRepository) DeleteByEvaluation(ctx context.Context, evaluationID types.EvaluationID) error {
	iter := r.client.Collection(r.collection()).
		Where("evaluation_id", "==", evaluationID.String()).
		Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate answers", goerr.V("evaluationID", evaluationID))
		}
		refs = append(refs, doc.Ref)
	}

	if len(refs) == 0 {
		return nil
	}

	bulkWriter := r.client.BulkWriter(ctx)
	defer bulkWriter.End()

	for _, ref := range refs {
		if _, err := bulkWriter.Delete(ref); err != nil {
			return goerr.Wrap(err, "failed to add Delete operation to bulk writer", goerr.V("evaluationID", evaluationID))
		}
	}

	bulkWriter.Flush()

	return nil
}

func (r *answerRepository) CountByQuestion(ctx context.Context, questionID types.QuestionID) (int, error) {
	iter := r.client.Collection(r.collection()).
		Where("question_id", "==", questionID.String()).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, goerr.Wrap(err, "failed to count answers", goerr.V("questionID", questionID))
		}
		count++
	}

	return count, nil
}
