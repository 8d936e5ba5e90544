package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料列
	ErrNotFound = errors.New("store: not found")
	// ErrEmailTaken email 唯一鍵衝突
	ErrEmailTaken = errors.New("store: email already taken")
	// ErrUserMissing 外鍵指向的使用者不存在
	ErrUserMissing = errors.New("store: referenced user does not exist")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgCode(err) == uniqueViolation }

func isForeignKeyViolation(err error) bool { return pgCode(err) == foreignKeyViolation }
