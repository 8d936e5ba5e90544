package service

import (
	"context"
	"errors"
	"fmt"

	"sample-app/internal/model"
	"sample-app/internal/store"

	"go.uber.org/zap"
)

// Graph is the follow graph: directed edges follower -> followed.
type Graph struct {
	users UserRepository
	rels  RelationshipRepository
	posts MicropostRepository
	log   *zap.Logger
}

func NewGraph(users UserRepository, rels RelationshipRepository, posts MicropostRepository, log *zap.Logger) *Graph {
	if log == nil {
		log = zap.NewNop()
	}
	return &Graph{users: users, rels: rels, posts: posts, log: log.Named("graph")}
}

// Follow is idempotent: an existing edge, or one inserted concurrently by
// another caller, makes it a no-op.
func (g *Graph) Follow(ctx context.Context, followerID, targetID int) error {
	if followerID == targetID {
		return invalidOperation("user %d cannot follow itself", followerID)
	}
	for _, id := range []int{followerID, targetID} {
		if _, err := g.users.GetUserByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return invalidOperation("user %d does not exist", id)
			}
			return fmt.Errorf("Graph.Follow: %w", err)
		}
	}

	created, err := g.rels.CreateRelationship(ctx, followerID, targetID)
	if err != nil {
		if errors.Is(err, store.ErrUserMissing) {
			return invalidOperation("user %d or %d no longer exists", followerID, targetID)
		}
		return fmt.Errorf("Graph.Follow: %w", err)
	}
	g.log.Debug("follow",
		zap.Int("follower_id", followerID),
		zap.Int("followed_id", targetID),
		zap.Bool("created", created),
	)
	return nil
}

// Unfollow removes the edge if present.
func (g *Graph) Unfollow(ctx context.Context, followerID, targetID int) error {
	if err := g.rels.DeleteRelationship(ctx, followerID, targetID); err != nil {
		return fmt.Errorf("Graph.Unfollow: %w", err)
	}
	g.log.Debug("unfollow", zap.Int("follower_id", followerID), zap.Int("followed_id", targetID))
	return nil
}

func (g *Graph) IsFollowing(ctx context.Context, followerID, targetID int) (bool, error) {
	if followerID == targetID {
		return false, nil
	}
	ok, err := g.rels.RelationshipExists(ctx, followerID, targetID)
	if err != nil {
		return false, fmt.Errorf("Graph.IsFollowing: %w", err)
	}
	return ok, nil
}

// FollowedUsers lists the targets of userID's outgoing edges, oldest edge first.
func (g *Graph) FollowedUsers(ctx context.Context, userID int) ([]int, error) {
	ids, err := g.rels.ListFollowedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Graph.FollowedUsers: %w", err)
	}
	return ids, nil
}

// Followers lists the sources of userID's incoming edges, oldest edge first.
func (g *Graph) Followers(ctx context.Context, userID int) ([]int, error) {
	ids, err := g.rels.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Graph.Followers: %w", err)
	}
	return ids, nil
}

func (g *Graph) Stats(ctx context.Context, userID int) (model.UserStats, error) {
	following, err := g.FollowedUsers(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}
	followers, err := g.Followers(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}
	posts, err := g.posts.CountMicropostsByUser(ctx, userID)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("Graph.Stats: %w", err)
	}
	return model.UserStats{
		Microposts: posts,
		Following:  len(following),
		Followers:  len(followers),
	}, nil
}
