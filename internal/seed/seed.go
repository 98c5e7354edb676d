// Package seed fills a development database with fake users and follow edges.
// Everything goes through the services, so the data obeys the same validation
// as API traffic.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
	"github.com/sbilibin2017/gw-social-graph/internal/services"
)

// DefaultPassword is given to every seeded user unless Options.Password is set.
const DefaultPassword = "password123"

const maxRegisterAttempts = 3

// Registerer creates users
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.UserDB, string, error)
}

// ProfileUpdater fills in public profile details
type ProfileUpdater interface {
	UpdatePersonalInfo(ctx context.Context, principal models.Principal, id int64, patch models.PersonalInfoPatch) (*models.UserDB, error)
}

// Follower creates follow edges
type Follower interface {
	Follow(ctx context.Context, userID, targetID int64) error
}

// Options controls how much data is generated.
type Options struct {
	Users          int
	FollowsPerUser int
	Password       string
	// Seed makes the generated data reproducible. Zero picks a random seed.
	Seed int64
}

// Result summarizes a seeding run.
type Result struct {
	Users   []*models.UserDB
	Follows int
}

// Seeder generates fake users and follow edges.
type Seeder struct {
	users    Registerer
	profiles ProfileUpdater
	follows  Follower
	faker    *gofakeit.Faker
	opts     Options
}

func NewSeeder(users Registerer, profiles ProfileUpdater, follows Follower, opts Options) *Seeder {
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	return &Seeder{
		users:    users,
		profiles: profiles,
		follows:  follows,
		faker:    gofakeit.New(opts.Seed),
		opts:     opts,
	}
}

// Run registers opts.Users users and makes each of them follow up to
// opts.FollowsPerUser distinct other seeded users.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	log := logger.FromContext(ctx)
	res := &Result{}

	for i := 0; i < s.opts.Users; i++ {
		user, err := s.createUser(ctx, i)
		if err != nil {
			return res, err
		}
		res.Users = append(res.Users, user)
	}
	log.Infow("seeded users", "count", len(res.Users))

	n := len(res.Users)
	for i, user := range res.Users {
		targets := s.pickTargets(n, i)
		for _, j := range targets {
			if err := s.follows.Follow(ctx, user.ID, res.Users[j].ID); err != nil {
				return res, fmt.Errorf("failed to follow user %d by %d: %w", res.Users[j].ID, user.ID, err)
			}
			res.Follows++
		}
	}
	log.Infow("seeded follows", "count", res.Follows)

	return res, nil
}

// createUser registers a fake user. A username or e-mail collision is retried with a
// fresh identity.
func (s *Seeder) createUser(ctx context.Context, i int) (*models.UserDB, error) {
	var lastErr error
	for attempt := 0; attempt < maxRegisterAttempts; attempt++ {
		username := s.username(i)
		user, _, err := s.users.Register(ctx, models.RegisterInput{
			Username:  username,
			Email:     strings.ToLower(username) + "@example.com",
			Password1: s.opts.Password,
			Password2: s.opts.Password,
			Name:      truncate(s.faker.Name(), 30),
		})
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to register seed user: %w", err)
		}

		user, err = s.profiles.UpdatePersonalInfo(ctx, models.Principal{UserID: user.ID}, user.ID, models.PersonalInfoPatch{
			Description: models.Some(truncate(s.faker.Sentence(8), 160)),
			Location:    models.Some(truncate(s.faker.City(), 20)),
			Avatar:      models.Some(fmt.Sprintf("https://i.pravatar.cc/150?u=%s", s.faker.UUID())),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fill seed profile: %w", err)
		}
		return user, nil
	}
	return nil, fmt.Errorf("failed to register seed user after %d attempts: %w", maxRegisterAttempts, lastErr)
}

func (s *Seeder) username(i int) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
			return r
		}
		return -1
	}, s.faker.Username())
	suffix := fmt.Sprintf("%d%d", i, s.faker.Number(100, 999))
	return truncate(base, 30-len(suffix)) + suffix
}

// pickTargets returns up to FollowsPerUser distinct indexes in [0, n) other than self.
func (s *Seeder) pickTargets(n, self int) []int {
	if s.opts.FollowsPerUser <= 0 || n < 2 {
		return nil
	}
	candidates := make([]int, 0, n-1)
	for j := 0; j < n; j++ {
		if j != self {
			candidates = append(candidates, j)
		}
	}
	s.faker.ShuffleInts(candidates)

	k := s.faker.Number(0, min(s.opts.FollowsPerUser, len(candidates)))
	return candidates[:k]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
