package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store 層所需的最小資料庫介面，*pgxpool.Pool 直接實作。
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(context.Context) error
	Close()
}

var _ DB = (*FakeDB)(nil)

// FakeDB 供 store 測試使用；未設定的 Fn 被呼叫時 panic，
// Begin 在沒有 BeginFn 時回傳 Tx
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	BeginFn    func(ctx context.Context) (pgx.Tx, error)
	PingFn     func(ctx context.Context) error
	CloseFn    func()

	Tx *FakeTx
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("FakeDB: unexpected Exec: " + sql)
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("FakeDB: unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	switch {
	case f.BeginFn != nil:
		return f.BeginFn(ctx)
	case f.Tx != nil:
		return f.Tx, nil
	}
	panic("FakeDB: unexpected Begin")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// FakeTx 是只支援 Exec/Commit/Rollback 的交易替身，並記錄執行過的 SQL。
// 其他 pgx.Tx 方法落到 nil 內嵌介面而 panic。
type FakeTx struct {
	pgx.Tx

	ExecFn    func(sql string, args ...any) (pgconn.CommandTag, error)
	CommitErr error

	Executed   []string
	Committed  bool
	RolledBack bool
}

func (t *FakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.Executed = append(t.Executed, sql)
	if t.ExecFn == nil {
		return pgconn.NewCommandTag("OK"), nil
	}
	return t.ExecFn(sql, args...)
}

func (t *FakeTx) Commit(context.Context) error {
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.Committed = true
	return nil
}

// Rollback 在 Commit 成功後回傳 pgx.ErrTxClosed，與 pgx 行為一致
func (t *FakeTx) Rollback(context.Context) error {
	if t.Committed {
		return pgx.ErrTxClosed
	}
	t.RolledBack = true
	return nil
}
