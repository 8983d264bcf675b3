package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionStat(ctx context.Context, data SessionStatData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	completed := data.CompletedAt
	if completed.IsZero() {
		completed = r.now()
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionTable).
		Columns(
			colSequence, colSessionID, colCompletedAt, colCategory,
			colTotalQuestions, colCorrectAnswers, colPointsEarned,
		).
		Values(
			seqNum, data.SessionID, completed.UTC(), data.Category,
			data.TotalQuestions, data.CorrectAnswers, data.PointsEarned,
		).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save session stat: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionStats(ctx context.Context) ([]SessionStatData, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select(
			colSessionID, colCompletedAt, colCategory,
			colTotalQuestions, colCorrectAnswers, colPointsEarned,
		).
		From(entsql.Table(sessionTable)).
		OrderBy(colSequence).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query session stats: %w", err)
	}
	defer rows.Close()

	var out []SessionStatData
	for rows.Next() {
		var s SessionStatData
		if err := rows.Scan(
			&s.SessionID, &s.CompletedAt, &s.Category,
			&s.TotalQuestions, &s.CorrectAnswers, &s.PointsEarned,
		); err != nil {
			return nil, fmt.Errorf("scan session stat: %w", err)
		}
		s.CompletedAt = s.CompletedAt.Local()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session stats: %w", err)
	}
	return out, nil
}
