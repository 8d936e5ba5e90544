package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sample-app/internal/model"
	"sample-app/internal/store"

	"go.uber.org/zap"
)

var timeNow = time.Now

// MicropostInput 只開放 content，擁有者一律由呼叫端明確傳入
type MicropostInput struct {
	Content string `json:"content" validate:"notblank,max=140"`
}

type Microposts struct {
	posts MicropostRepository
	log   *zap.Logger
}

func NewMicroposts(posts MicropostRepository, log *zap.Logger) *Microposts {
	if log == nil {
		log = zap.NewNop()
	}
	return &Microposts{posts: posts, log: log.Named("microposts")}
}

func (s *Microposts) Create(ctx context.Context, userID int, in MicropostInput) (*model.Micropost, error) {
	if userID <= 0 {
		return nil, validationFailed("user_id", "required")
	}
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	m, err := s.posts.CreateMicropost(ctx, &model.Micropost{
		UserID:    userID,
		Content:   in.Content,
		CreatedAt: timeNow().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		if errors.Is(err, store.ErrUserMissing) {
			return nil, validationFailed("user_id", "exists")
		}
		return nil, fmt.Errorf("Microposts.Create: %w", err)
	}
	s.log.Debug("micropost created", zap.Int("user_id", userID), zap.Int("micropost_id", m.ID))
	return m, nil
}

// ListForUser is empty for an unknown or destroyed user.
func (s *Microposts) ListForUser(ctx context.Context, userID int, page model.Page) ([]model.Micropost, error) {
	list, err := s.posts.ListMicropostsByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("Microposts.ListForUser: %w", err)
	}
	return list, nil
}

func (s *Microposts) Count(ctx context.Context, userID int) (int, error) {
	n, err := s.posts.CountMicropostsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("Microposts.Count: %w", err)
	}
	return n, nil
}

// Destroy deletes one post owned by ownerID.
func (s *Microposts) Destroy(ctx context.Context, ownerID, micropostID int) error {
	if err := s.posts.DeleteMicropost(ctx, ownerID, micropostID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("Microposts.Destroy: %w", err)
	}
	s.log.Debug("micropost destroyed", zap.Int("user_id", ownerID), zap.Int("micropost_id", micropostID))
	return nil
}

func (s *Microposts) DestroyAllForUser(ctx context.Context, userID int) error {
	n, err := s.posts.DeleteMicropostsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("Microposts.DestroyAllForUser: %w", err)
	}
	s.log.Debug("microposts destroyed", zap.Int("user_id", userID), zap.Int64("count", n))
	return nil
}
