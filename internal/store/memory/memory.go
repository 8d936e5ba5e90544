// Package memory is an in-process twin of the PostgreSQL store. It honours
// the same constraints (unique email, unique edge, cascading delete) under a
// single mutex so check-and-insert sequences are atomic.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"sample-app/internal/model"
	"sample-app/internal/store"
)

type edge struct {
	follower int
	followed int
}

type Store struct {
	mu sync.RWMutex

	nextUserID int
	nextPostID int
	nextEdgeID int

	users  map[int]model.User
	emails map[string]int
	posts  map[int]model.Micropost
	edges  map[edge]model.Relationship

	// Now stamps users and edges; defaults to time.Now.
	Now func() time.Time
}

func New() *Store {
	return &Store{
		users:  make(map[int]model.User),
		emails: make(map[string]int),
		posts:  make(map[int]model.Micropost),
		edges:  make(map[edge]model.Relationship),
		Now:    time.Now,
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// --- users ---

func (s *Store) CreateUser(_ context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[u.Email]; taken {
		return nil, store.ErrEmailTaken
	}
	s.nextUserID++
	u.ID = s.nextUserID
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	s.emails[u.Email] = u.ID
	return u, nil
}

func (s *Store) GetUserByID(_ context.Context, userID int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	u := s.users[id]
	return &u, nil
}

func (s *Store) ListUsers(_ context.Context, page model.Page) ([]model.User, error) {
	s.mu.RLock()
	list := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		list = append(list, u)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return model.Apply(list, page), nil
}

func (s *Store) ListUsersByIDs(_ context.Context, ids []int) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Store) DeleteUser(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	for e := range s.edges {
		if e.follower == userID || e.followed == userID {
			delete(s.edges, e)
		}
	}
	for id, p := range s.posts {
		if p.UserID == userID {
			delete(s.posts, id)
		}
	}
	delete(s.emails, u.Email)
	delete(s.users, userID)
	return nil
}

// --- microposts ---

func (s *Store) CreateMicropost(_ context.Context, m *model.Micropost) (*model.Micropost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[m.UserID]; !ok {
		return nil, store.ErrUserMissing
	}
	s.nextPostID++
	m.ID = s.nextPostID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	s.posts[m.ID] = *m
	return m, nil
}

func (s *Store) ListMicropostsByUser(ctx context.Context, userID int, page model.Page) ([]model.Micropost, error) {
	return s.ListMicropostsByUsers(ctx, []int{userID}, page)
}

func (s *Store) ListMicropostsByUsers(_ context.Context, userIDs []int, page model.Page) ([]model.Micropost, error) {
	owners := make(map[int]struct{}, len(userIDs))
	for _, id := range userIDs {
		owners[id] = struct{}{}
	}

	s.mu.RLock()
	list := []model.Micropost{}
	for _, p := range s.posts {
		if _, ok := owners[p.UserID]; ok {
			list = append(list, p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return model.Apply(list, page), nil
}

func (s *Store) CountMicropostsByUser(_ context.Context, userID int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.posts {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *Store) DeleteMicropost(_ context.Context, ownerID, micropostID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[micropostID]
	if !ok || p.UserID != ownerID {
		return store.ErrNotFound
	}
	delete(s.posts, micropostID)
	return nil
}

func (s *Store) DeleteMicropostsByUser(_ context.Context, userID int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, p := range s.posts {
		if p.UserID == userID {
			delete(s.posts, id)
			n++
		}
	}
	return n, nil
}

// --- relationships ---

func (s *Store) CreateRelationship(_ context.Context, followerID, followedID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, okA := s.users[followerID]
	_, okB := s.users[followedID]
	if !okA || !okB {
		return false, store.ErrUserMissing
	}
	e := edge{follower: followerID, followed: followedID}
	if _, exists := s.edges[e]; exists {
		return false, nil
	}
	s.nextEdgeID++
	s.edges[e] = model.Relationship{
		ID:         s.nextEdgeID,
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  s.now(),
	}
	return true, nil
}

func (s *Store) DeleteRelationship(_ context.Context, followerID, followedID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.edges, edge{follower: followerID, followed: followedID})
	return nil
}

func (s *Store) RelationshipExists(_ context.Context, followerID, followedID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.edges[edge{follower: followerID, followed: followedID}]
	return ok, nil
}

func (s *Store) ListFollowedIDs(_ context.Context, userID int) ([]int, error) {
	return s.listIDs(func(r model.Relationship) (int, bool) {
		return r.FollowedID, r.FollowerID == userID
	}), nil
}

func (s *Store) ListFollowerIDs(_ context.Context, userID int) ([]int, error) {
	return s.listIDs(func(r model.Relationship) (int, bool) {
		return r.FollowerID, r.FollowedID == userID
	}), nil
}

// RelationshipCount is the total number of edges; tests use it to check
// that no duplicate was recorded.
func (s *Store) RelationshipCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

func (s *Store) listIDs(pick func(model.Relationship) (int, bool)) []int {
	s.mu.RLock()
	matched := []model.Relationship{}
	for _, r := range s.edges {
		if _, ok := pick(r); ok {
			matched = append(matched, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	ids := make([]int, 0, len(matched))
	for _, r := range matched {
		id, _ := pick(r)
		ids = append(ids, id)
	}
	return ids
}
