package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sample-app/internal/model"
	"sample-app/internal/store/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func newTestServices(t *testing.T) (*Services, *memory.Store) {
	t.Helper()
	repo := memory.New()
	return New(repo, BcryptVerifier{Cost: bcrypt.MinCost}, zaptest.NewLogger(t)), repo
}

func signup(name, email string) SignupInput {
	return SignupInput{Name: name, Email: email, Password: "foobar", PasswordConfirmation: "foobar"}
}

var userSeq int

func mustUser(t *testing.T, s *Services) *model.User {
	t.Helper()
	userSeq++
	u, err := s.Identity.Create(context.Background(), signup(
		fmt.Sprintf("Person %d", userSeq),
		fmt.Sprintf("person-%d@example.com", userSeq),
	))
	require.NoError(t, err)
	return u
}

// postAt creates a micropost stamped with at.
func postAt(t *testing.T, s *Services, userID int, content string, at time.Time) *model.Micropost {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return at }
	defer func() { timeNow = prev }()

	m, err := s.Microposts.Create(context.Background(), userID, MicropostInput{Content: content})
	require.NoError(t, err)
	return m
}

func ids(posts []model.Micropost) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
