// Package seed fills an empty store with sample users, microposts and
// follow edges.
package seed

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sample-app/internal/model"
	"sample-app/internal/service"
	"sample-app/internal/worker"

	"go.uber.org/zap"
)

const (
	AdminName     = "Example User"
	AdminEmail    = "example@railstutorial.org"
	AdminPassword = "foobar"

	// 只有前幾位使用者會有貼文
	postingUsers = 6
	// 第一位使用者追蹤 2..50，3..40 追蹤第一位使用者
	followedUpTo = 50
	followerFrom = 3
	followerUpTo = 40
)

var newPool = worker.NewPool

type Options struct {
	Users             int
	MicropostsPerUser int
	Workers           int
}

type Summary struct {
	Users         int
	Microposts    int
	Relationships int
}

type Populator struct {
	svc *service.Services
	log *zap.Logger
}

func New(svc *service.Services, log *zap.Logger) *Populator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Populator{svc: svc, log: log.Named("seed")}
}

// Populate 建立管理員、opts.Users 位使用者、貼文與追蹤關係
func (p *Populator) Populate(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary

	if _, err := p.svc.Identity.CreateAdmin(ctx, signup(AdminName, AdminEmail)); err != nil {
		return sum, fmt.Errorf("seed admin: %w", err)
	}
	sum.Users++

	if err := p.each(ctx, opts.Workers, opts.Users, func(ctx context.Context, n int) error {
		_, err := p.svc.Identity.Create(ctx, signup(
			fmt.Sprintf("Example User %d", n+1),
			fmt.Sprintf("example-%d@railstutorial.org", n+1),
		))
		return err
	}); err != nil {
		return sum, fmt.Errorf("seed users: %w", err)
	}
	sum.Users += opts.Users
	p.log.Info("users created", zap.Int("count", sum.Users))

	users, err := p.svc.Identity.List(ctx, model.Page{})
	if err != nil {
		return sum, fmt.Errorf("seed: %w", err)
	}

	authors := users[:min(postingUsers, len(users))]
	var mu sync.Mutex
	if err := p.each(ctx, opts.Workers, len(authors)*opts.MicropostsPerUser, func(ctx context.Context, n int) error {
		author := authors[n%len(authors)]
		if _, err := p.svc.Microposts.Create(ctx, author.ID, service.MicropostInput{Content: Sentence(n)}); err != nil {
			return err
		}
		mu.Lock()
		sum.Microposts++
		mu.Unlock()
		return nil
	}); err != nil {
		return sum, fmt.Errorf("seed microposts: %w", err)
	}
	p.log.Info("microposts created", zap.Int("count", sum.Microposts))

	n, err := p.relationships(ctx, users)
	sum.Relationships = n
	if err != nil {
		return sum, fmt.Errorf("seed relationships: %w", err)
	}
	p.log.Info("relationships created", zap.Int("count", sum.Relationships))
	return sum, nil
}

func (p *Populator) relationships(ctx context.Context, users []model.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	first := users[0].ID
	count := 0
	for _, u := range users[1:min(followedUpTo, len(users))] {
		if err := p.svc.Graph.Follow(ctx, first, u.ID); err != nil {
			return count, err
		}
		count++
	}
	if len(users) >= followerFrom {
		for _, u := range users[followerFrom-1 : min(followerUpTo, len(users))] {
			if err := p.svc.Graph.Follow(ctx, u.ID, first); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// each 以 worker pool 執行 fn(0..n-1)，回傳第一個錯誤
func (p *Populator) each(ctx context.Context, workers, n int, fn func(context.Context, int) error) error {
	pool := newPool(ctx, workers)
	for i := 0; i < n; i++ {
		pool.Submit(func(ctx context.Context) error { return fn(ctx, i) })
	}
	return pool.Stop()
}

func signup(name, email string) service.SignupInput {
	return service.SignupInput{
		Name:                 name,
		Email:                email,
		Password:             AdminPassword,
		PasswordConfirmation: AdminPassword,
	}
}

var words = strings.Fields(`lorem ipsum dolor sit amet consectetur adipisci elit sed eiusmod
tempor incidunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrum
exercitationem ullam corporis suscipit laboriosam`)

// Sentence 產生固定的假文字，長度不超過 140 字元
func Sentence(n int) string {
	var b strings.Builder
	for i := 0; i < 5+n%6; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[(n*7+i*3)%len(words)])
	}
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
