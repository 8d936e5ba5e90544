package store

import (
	"context"
	"fmt"

	"sample-app/internal/model"

	"github.com/jackc/pgx/v5"
)

func (p *Postgres) CreateMicropost(ctx context.Context, m *model.Micropost) (*model.Micropost, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO microposts (user_id, content, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		m.UserID,
		m.Content,
		m.CreatedAt,
	)
	if err := row.Scan(&m.ID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrUserMissing
		}
		return nil, fmt.Errorf("CreateMicropost: %w", err)
	}
	return m, nil
}

func (p *Postgres) ListMicropostsByUser(ctx context.Context, userID int, page model.Page) ([]model.Micropost, error) {
	return p.ListMicropostsByUsers(ctx, []int{userID}, page)
}

// ListMicropostsByUsers returns posts owned by any of userIDs, newest first
// with id as tie breaker.
func (p *Postgres) ListMicropostsByUsers(ctx context.Context, userIDs []int, page model.Page) ([]model.Micropost, error) {
	if len(userIDs) == 0 {
		return []model.Micropost{}, nil
	}
	rows, err := p.db.Query(ctx,
		`SELECT id, user_id, content, created_at
		 FROM microposts
		 WHERE user_id = ANY($1)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userIDs,
		limitArg(page),
		offsetArg(page),
	)
	if err != nil {
		return nil, fmt.Errorf("ListMicropostsByUsers: %w", err)
	}
	return collectMicroposts(rows)
}

func collectMicroposts(rows pgx.Rows) ([]model.Micropost, error) {
	defer rows.Close()
	list := []model.Micropost{}
	for rows.Next() {
		var m model.Micropost
		if err := rows.Scan(&m.ID, &m.UserID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListMicropostsByUsers: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListMicropostsByUsers: %w", err)
	}
	return list, nil
}

func (p *Postgres) CountMicropostsByUser(ctx context.Context, userID int) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx,
		`SELECT count(*) FROM microposts WHERE user_id = $1`,
		userID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountMicropostsByUser: %w", err)
	}
	return n, nil
}

// DeleteMicropost deletes a post only when it belongs to ownerID.
func (p *Postgres) DeleteMicropost(ctx context.Context, ownerID, micropostID int) error {
	tag, err := p.db.Exec(ctx,
		`DELETE FROM microposts WHERE id = $1 AND user_id = $2`,
		micropostID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteMicropost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteMicropostsByUser(ctx context.Context, userID int) (int64, error) {
	tag, err := p.db.Exec(ctx,
		`DELETE FROM microposts WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteMicropostsByUser: %w", err)
	}
	return tag.RowsAffected(), nil
}
