package store

import (
	"context"
	"errors"
	"fmt"

	"sample-app/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_digest, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordDigest,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Postgres) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_digest, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Email,
		u.PasswordDigest,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func (p *Postgres) GetUserByID(ctx context.Context, userID int) (*model.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail expects an already lower-cased address.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func (p *Postgres) ListUsers(ctx context.Context, page model.Page) ([]model.User, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`,
		limitArg(page),
		offsetArg(page),
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return collectUsers("ListUsers", rows)
}

// ListUsersByIDs keeps the order of ids; unknown ids are skipped.
func (p *Postgres) ListUsersByIDs(ctx context.Context, ids []int) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	rows, err := p.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsersByIDs: %w", err)
	}
	found, err := collectUsers("ListUsersByIDs", rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]model.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}
	out := make([]model.User, 0, len(found))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func collectUsers(op string, rows pgx.Rows) ([]model.User, error) {
	defer rows.Close()
	list := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// DeleteUser removes the user and everything that references it in one
// transaction. The schema also cascades, the explicit deletes keep the
// routine correct on databases migrated without the FK actions.
func (p *Postgres) DeleteUser(ctx context.Context, userID int) (err error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`DELETE FROM relationships WHERE follower_id = $1 OR followed_id = $1`,
		userID,
	); err != nil {
		return fmt.Errorf("DeleteUser: relationships: %w", err)
	}
	if _, err = tx.Exec(ctx,
		`DELETE FROM microposts WHERE user_id = $1`,
		userID,
	); err != nil {
		return fmt.Errorf("DeleteUser: microposts: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrNotFound
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeleteUser: commit: %w", err)
	}
	return nil
}
