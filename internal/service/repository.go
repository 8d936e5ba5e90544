package service

import (
	"context"

	"sample-app/internal/model"
)

// UserRepository persists users. Implementations return store.ErrNotFound
// for unknown ids/emails and store.ErrEmailTaken on a duplicate email.
type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, userID int) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, page model.Page) ([]model.User, error)
	ListUsersByIDs(ctx context.Context, ids []int) ([]model.User, error)
	// DeleteUser removes the user, its microposts and every edge touching
	// it as one atomic unit.
	DeleteUser(ctx context.Context, userID int) error
}

// MicropostRepository persists microposts. Listings are ordered by
// created_at DESC, id DESC.
type MicropostRepository interface {
	CreateMicropost(ctx context.Context, m *model.Micropost) (*model.Micropost, error)
	ListMicropostsByUser(ctx context.Context, userID int, page model.Page) ([]model.Micropost, error)
	ListMicropostsByUsers(ctx context.Context, userIDs []int, page model.Page) ([]model.Micropost, error)
	CountMicropostsByUser(ctx context.Context, userID int) (int, error)
	DeleteMicropost(ctx context.Context, ownerID, micropostID int) error
	DeleteMicropostsByUser(ctx context.Context, userID int) (int64, error)
}

// RelationshipRepository persists follow edges. CreateRelationship must be
// an atomic check-and-insert: concurrent identical calls leave one edge.
type RelationshipRepository interface {
	CreateRelationship(ctx context.Context, followerID, followedID int) (bool, error)
	DeleteRelationship(ctx context.Context, followerID, followedID int) error
	RelationshipExists(ctx context.Context, followerID, followedID int) (bool, error)
	ListFollowedIDs(ctx context.Context, userID int) ([]int, error)
	ListFollowerIDs(ctx context.Context, userID int) ([]int, error)
}

type Repository interface {
	UserRepository
	MicropostRepository
	RelationshipRepository
	Ping(ctx context.Context) error
}
