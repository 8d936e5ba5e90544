package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"sample-app/internal/database"
	"sample-app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMicropostStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("CreateMicropost success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{3, "hello", now}, args)
				return &fakeRow{vals: []any{11}}
			},
		}
		m, err := NewPostgres(db).CreateMicropost(ctx, &model.Micropost{UserID: 3, Content: "hello", CreatedAt: now})
		require.NoError(t, err)
		require.Equal(t, 11, m.ID)
	})

	t.Run("CreateMicropost missing owner", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: pgErr("23503")}
			},
		}
		_, err := NewPostgres(db).CreateMicropost(ctx, &model.Micropost{UserID: 3, Content: "x"})
		require.ErrorIs(t, err, ErrUserMissing)
	})

	t.Run("ListMicropostsByUsers order and window", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "ORDER BY created_at DESC, id DESC")
				require.Equal(t, []any{[]int{1, 2}, 2, 4}, args)
				return &fakeRows{data: [][]any{
					{9, 2, "newer", now},
					{8, 1, "older", now.Add(-time.Hour)},
				}}, nil
			},
		}
		list, err := NewPostgres(db).ListMicropostsByUsers(ctx, []int{1, 2}, model.Page{Limit: 2, Offset: 4})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, 9, list[0].ID)
		require.Equal(t, "older", list[1].Content)
	})

	t.Run("ListMicropostsByUser uses single owner", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{[]int{5}, nil, 0}, args)
				return &fakeRows{}, nil
			},
		}
		list, err := NewPostgres(db).ListMicropostsByUser(ctx, 5, model.Page{Offset: -3})
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("ListMicropostsByUsers no owners", func(t *testing.T) {
		list, err := NewPostgres(&database.FakeDB{}).ListMicropostsByUsers(ctx, nil, model.Page{})
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("ListMicropostsByUsers query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := NewPostgres(db).ListMicropostsByUsers(ctx, []int{1}, model.Page{})
		require.Error(t, err)
	})

	t.Run("CountMicropostsByUser", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{vals: []any{4}}
			},
		}
		n, err := NewPostgres(db).CountMicropostsByUser(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 4, n)
	})

	t.Run("DeleteMicropost", func(t *testing.T) {
		affected := "DELETE 1"
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "AND user_id = $2")
				require.Equal(t, []any{10, 3}, args)
				return pgconn.NewCommandTag(affected), nil
			},
		}
		p := NewPostgres(db)
		require.NoError(t, p.DeleteMicropost(ctx, 3, 10))

		affected = "DELETE 0"
		require.ErrorIs(t, p.DeleteMicropost(ctx, 3, 10), ErrNotFound)
	})

	t.Run("DeleteMicropostsByUser", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 3"), nil
			},
		}
		n, err := NewPostgres(db).DeleteMicropostsByUser(ctx, 1)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)

		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("boom")
		}
		_, err = NewPostgres(db).DeleteMicropostsByUser(ctx, 1)
		require.Error(t, err)
	})
}
