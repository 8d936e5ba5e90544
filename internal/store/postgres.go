package store

import (
	"context"

	"sample-app/internal/database"
	"sample-app/internal/model"
)

// Postgres implements the user, micropost and relationship repositories on
// top of a pgx pool.
type Postgres struct {
	db database.DB
}

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// limitArg maps an unbounded page to SQL NULL, which LIMIT treats as "all".
func limitArg(page model.Page) any {
	if page.Limit <= 0 {
		return nil
	}
	return page.Limit
}

func offsetArg(page model.Page) int {
	if page.Offset < 0 {
		return 0
	}
	return page.Offset
}
