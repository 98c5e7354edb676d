package seed

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
	"github.com/sbilibin2017/gw-social-graph/internal/services"
)

type fakeStore struct {
	users     map[int64]*models.UserDB
	usernames map[string]bool
	follows   map[[2]int64]bool
	inputs    []models.RegisterInput
	collide   int
	failWith  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     map[int64]*models.UserDB{},
		usernames: map[string]bool{},
		follows:   map[[2]int64]bool{},
	}
}

func (f *fakeStore) Register(_ context.Context, in models.RegisterInput) (*models.UserDB, string, error) {
	f.inputs = append(f.inputs, in)
	if f.failWith != nil {
		return nil, "", f.failWith
	}
	if f.collide > 0 || f.usernames[in.Username] {
		f.collide--
		verr := services.NewValidationError()
		verr.Add("username", "taken")
		return nil, "", verr
	}
	id := int64(len(f.users) + 1)
	user := &models.UserDB{ID: id, Username: in.Username, Email: in.Email, Name: in.Name, IsActive: true}
	f.users[id] = user
	f.usernames[in.Username] = true
	return user, "token", nil
}

func (f *fakeStore) UpdatePersonalInfo(_ context.Context, principal models.Principal, id int64, patch models.PersonalInfoPatch) (*models.UserDB, error) {
	if principal.UserID != id {
		return nil, services.ErrForbidden
	}
	user := f.users[id]
	user.Description = &patch.Description.Value
	user.Location = &patch.Location.Value
	user.Avatar = &patch.Avatar.Value
	return user, nil
}

func (f *fakeStore) Follow(_ context.Context, userID, targetID int64) error {
	f.follows[[2]int64{userID, targetID}] = true
	return nil
}

func TestSeeder_Run(t *testing.T) {
	store := newFakeStore()
	s := NewSeeder(store, store, store, Options{Users: 10, FollowsPerUser: 4, Seed: 42})

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Users, 10)
	assert.Equal(t, len(store.follows), res.Follows)
	assert.LessOrEqual(t, res.Follows, 10*4)

	usernameRe := regexp.MustCompile(`^[\w.@+-]+$`)
	for _, in := range store.inputs {
		assert.Regexp(t, usernameRe, in.Username)
		assert.LessOrEqual(t, utf8.RuneCountInString(in.Username), 30)
		assert.LessOrEqual(t, utf8.RuneCountInString(in.Name), 30)
		assert.Equal(t, DefaultPassword, in.Password1)
		assert.Equal(t, in.Password1, in.Password2)
	}

	for _, u := range res.Users {
		require.NotNil(t, u.Location)
		assert.LessOrEqual(t, utf8.RuneCountInString(*u.Location), 20)
		require.NotNil(t, u.Description)
		assert.LessOrEqual(t, utf8.RuneCountInString(*u.Description), 160)
	}

	for edge := range store.follows {
		assert.NotEqual(t, edge[0], edge[1], "user must not follow itself")
	}
}

func TestSeeder_Run_RetriesCollisions(t *testing.T) {
	store := newFakeStore()
	store.collide = 2
	s := NewSeeder(store, store, store, Options{Users: 1, Password: "another-secret"})

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Len(t, store.inputs, 3)
	assert.Equal(t, "another-secret", store.inputs[0].Password1)
	assert.Zero(t, res.Follows)
}

func TestSeeder_Run_GivesUpAfterRepeatedCollisions(t *testing.T) {
	store := newFakeStore()
	store.collide = maxRegisterAttempts
	s := NewSeeder(store, store, store, Options{Users: 1})

	_, err := s.Run(context.Background())
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSeeder_Run_StopsOnStoreError(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("db down")
	s := NewSeeder(store, store, store, Options{Users: 3})

	res, err := s.Run(context.Background())
	assert.ErrorIs(t, err, store.failWith)
	assert.Empty(t, res.Users)
	assert.Len(t, store.inputs, 1)
}

func TestPickTargets(t *testing.T) {
	s := NewSeeder(nil, nil, nil, Options{FollowsPerUser: 100, Seed: 1})

	assert.Nil(t, s.pickTargets(1, 0))

	for i := 0; i < 20; i++ {
		targets := s.pickTargets(5, 2)
		assert.LessOrEqual(t, len(targets), 4)
		seen := map[int]bool{}
		for _, j := range targets {
			assert.NotEqual(t, 2, j)
			assert.False(t, seen[j])
			seen[j] = true
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "żó", truncate("żółw", 2))
}
