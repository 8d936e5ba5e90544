package service

import (
	"context"
	"errors"
	"fmt"

	"sample-app/internal/model"
	"sample-app/internal/store"

	"go.uber.org/zap"
)

// Feed derives a user's timeline from the current graph and post store on
// every call. Nothing is cached, so mutations are visible on the next read.
type Feed struct {
	users UserRepository
	rels  RelationshipRepository
	posts MicropostRepository
	log   *zap.Logger
}

func NewFeed(users UserRepository, rels RelationshipRepository, posts MicropostRepository, log *zap.Logger) *Feed {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{users: users, rels: rels, posts: posts, log: log.Named("feed")}
}

// Feed returns own posts plus posts of followed users, ordered by
// created_at DESC then id DESC, windowed by page.
func (f *Feed) Feed(ctx context.Context, userID int, page model.Page) ([]model.Micropost, error) {
	if _, err := f.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("Feed: %w", err)
	}

	followed, err := f.rels.ListFollowedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Feed: %w", err)
	}
	owners := ownerSet(userID, followed)

	posts, err := f.posts.ListMicropostsByUsers(ctx, owners, page)
	if err != nil {
		return nil, fmt.Errorf("Feed: %w", err)
	}
	f.log.Debug("feed computed",
		zap.Int("user_id", userID),
		zap.Int("owners", len(owners)),
		zap.Int("posts", len(posts)),
	)
	return posts, nil
}

// ownerSet is {self} ∪ followed without duplicates, self first.
func ownerSet(self int, followed []int) []int {
	seen := make(map[int]struct{}, len(followed)+1)
	out := make([]int, 0, len(followed)+1)
	for _, id := range append([]int{self}, followed...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
