package store

import (
	"context"
	"errors"
	"testing"

	"sample-app/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestRelationshipStore(t *testing.T) {
	ctx := context.Background()

	execReturning := func(tag string, err error) *database.FakeDB {
		return &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag(tag), err
			},
		}
	}

	t.Run("CreateRelationship inserts", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "ON CONFLICT (follower_id, followed_id) DO NOTHING")
				require.Equal(t, []any{1, 2}, args)
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			},
		}
		created, err := NewPostgres(db).CreateRelationship(ctx, 1, 2)
		require.NoError(t, err)
		require.True(t, created)
	})

	t.Run("CreateRelationship existing edge", func(t *testing.T) {
		created, err := NewPostgres(execReturning("INSERT 0 0", nil)).CreateRelationship(ctx, 1, 2)
		require.NoError(t, err)
		require.False(t, created)
	})

	t.Run("CreateRelationship lost race", func(t *testing.T) {
		created, err := NewPostgres(execReturning("", pgErr("23505"))).CreateRelationship(ctx, 1, 2)
		require.NoError(t, err)
		require.False(t, created)
	})

	t.Run("CreateRelationship missing user", func(t *testing.T) {
		_, err := NewPostgres(execReturning("", pgErr("23503"))).CreateRelationship(ctx, 1, 2)
		require.ErrorIs(t, err, ErrUserMissing)
	})

	t.Run("CreateRelationship other error", func(t *testing.T) {
		_, err := NewPostgres(execReturning("", errors.New("boom"))).CreateRelationship(ctx, 1, 2)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUserMissing)
	})

	t.Run("DeleteRelationship", func(t *testing.T) {
		require.NoError(t, NewPostgres(execReturning("DELETE 0", nil)).DeleteRelationship(ctx, 1, 2))
		require.Error(t, NewPostgres(execReturning("", errors.New("boom"))).DeleteRelationship(ctx, 1, 2))
	})

	t.Run("RelationshipExists", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{vals: []any{true}}
			},
		}
		ok, err := NewPostgres(db).RelationshipExists(ctx, 1, 2)
		require.NoError(t, err)
		require.True(t, ok)

		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{scanErr: errors.New("boom")}
		}
		_, err = NewPostgres(db).RelationshipExists(ctx, 1, 2)
		require.Error(t, err)
	})

	t.Run("ListFollowedIDs and ListFollowerIDs", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "ORDER BY created_at, id")
				require.Equal(t, []any{1}, args)
				return &fakeRows{data: [][]any{{3}, {2}}}, nil
			},
		}
		p := NewPostgres(db)
		ids, err := p.ListFollowedIDs(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []int{3, 2}, ids)

		ids, err = p.ListFollowerIDs(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []int{3, 2}, ids)
	})

	t.Run("listIDs errors", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := NewPostgres(db).ListFollowedIDs(ctx, 1)
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{{1}}, scanErr: errors.New("scan")}, nil
		}
		_, err = NewPostgres(db).ListFollowerIDs(ctx, 1)
		require.Error(t, err)
	})
}
