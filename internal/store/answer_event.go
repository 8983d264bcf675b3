package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo over the ent SQL driver.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(answerTable).
		Columns(
			colSequence, colTimestamp, colSessionID, colCategory, colQuestionText,
			colCorrectAnswer, colUserAnswer, colIsCorrect, colDifficulty,
			colStreakBefore, colPointsAwarded,
		).
		Values(
			seqNum, r.now().UTC(), data.SessionID, data.Category, data.QuestionText,
			data.CorrectAnswer, data.UserAnswer, data.Correct, data.Difficulty,
			data.StreakBefore, data.PointsAwarded,
		).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentAnswers
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Select(
			colSequence, colTimestamp, colSessionID, colCategory, colQuestionText,
			colCorrectAnswer, colUserAnswer, colIsCorrect, colDifficulty,
			colStreakBefore, colPointsAwarded,
		).
		From(entsql.Table(answerTable)).
		OrderBy(entsql.Desc(colSequence)).
		Limit(limit).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var a AnswerRecord
		if err := rows.Scan(
			&a.Sequence, &a.Timestamp, &a.SessionID, &a.Category, &a.QuestionText,
			&a.CorrectAnswer, &a.UserAnswer, &a.Correct, &a.Difficulty,
			&a.StreakBefore, &a.PointsAwarded,
		); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.Timestamp = a.Timestamp.Local()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}
	return out, nil
}
