package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// profileRepo implements ProfileRepo over the ent SQL driver.
type profileRepo struct {
	drv *entsql.Driver
}

func (r *profileRepo) LoadProfile(ctx context.Context) (*Profile, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select(colName, colGrade, colPoints, colAvatar, colLanguage).
		From(entsql.Table(profileTable)).
		Where(entsql.EQ(colID, profileID)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query profile: %w", err)
		}
		return nil, nil
	}
	var p Profile
	if err := rows.Scan(&p.Name, &p.Grade, &p.Points, &p.Avatar, &p.Language); err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) SaveProfile(ctx context.Context, p Profile) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(profileTable).
		Columns(colID, colName, colGrade, colPoints, colAvatar, colLanguage).
		Values(profileID, p.Name, p.Grade, p.Points, p.Avatar, p.Language).
		OnConflict(
			entsql.ConflictColumns(colID),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
