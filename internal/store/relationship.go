package store

import (
	"context"
	"fmt"
)

// CreateRelationship inserts the edge unless it already exists. created is
// false when the edge was already there, including when a concurrent insert
// won the race on the unique key.
func (p *Postgres) CreateRelationship(ctx context.Context, followerID, followedID int) (created bool, err error) {
	tag, err := p.db.Exec(ctx,
		`INSERT INTO relationships (follower_id, followed_id)
		 VALUES ($1, $2)
		 ON CONFLICT (follower_id, followed_id) DO NOTHING`,
		followerID,
		followedID,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return false, nil
		case isForeignKeyViolation(err):
			return false, ErrUserMissing
		}
		return false, fmt.Errorf("CreateRelationship: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (p *Postgres) DeleteRelationship(ctx context.Context, followerID, followedID int) error {
	if _, err := p.db.Exec(ctx,
		`DELETE FROM relationships WHERE follower_id = $1 AND followed_id = $2`,
		followerID,
		followedID,
	); err != nil {
		return fmt.Errorf("DeleteRelationship: %w", err)
	}
	return nil
}

func (p *Postgres) RelationshipExists(ctx context.Context, followerID, followedID int) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM relationships WHERE follower_id = $1 AND followed_id = $2
		 )`,
		followerID,
		followedID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("RelationshipExists: %w", err)
	}
	return exists, nil
}

func (p *Postgres) ListFollowedIDs(ctx context.Context, userID int) ([]int, error) {
	return p.listIDs(ctx, "ListFollowedIDs",
		`SELECT followed_id FROM relationships
		 WHERE follower_id = $1
		 ORDER BY created_at, id`,
		userID,
	)
}

func (p *Postgres) ListFollowerIDs(ctx context.Context, userID int) ([]int, error) {
	return p.listIDs(ctx, "ListFollowerIDs",
		`SELECT follower_id FROM relationships
		 WHERE followed_id = $1
		 ORDER BY created_at, id`,
		userID,
	)
}

func (p *Postgres) listIDs(ctx context.Context, op, sql string, userID int) ([]int, error) {
	rows, err := p.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}
