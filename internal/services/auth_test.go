package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockJWTGenerator(ctrl)
	mockRevoker := NewMockTokenRevoker(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)
	ctx := context.Background()

	valid := models.RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password1: "password123",
		Password2: "password123",
	}

	t.Run("successful registration defaults name to username", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.UserDB) (int64, error) {
				assert.Equal(t, "alice", user.Name)
				assert.True(t, user.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
				return 1, nil
			})
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Username: "alice", Name: "alice", IsActive: true}, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), int64(1), false).Return("token", nil)

		user, token, err := svc.Register(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "token", token)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("explicit name is kept", func(t *testing.T) {
		in := valid
		in.Name = "Alice A."
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.UserDB) (int64, error) {
				assert.Equal(t, "Alice A.", user.Name)
				return 2, nil
			})
		mockReader.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.UserDB{ID: 2}, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), int64(2), false).Return("token", nil)

		_, _, err := svc.Register(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("field validation", func(t *testing.T) {
		in := models.RegisterInput{
			Username:  "bad name!",
			Email:     "not-an-email",
			Password1: "short",
			Password2: "other",
		}

		_, _, err := svc.Register(ctx, in)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "username")
		assert.Contains(t, verr.Fields, "email")
		assert.Equal(t, []string{"This password is too short. It must contain at least 8 characters."}, verr.Fields["password1"])
		assert.Equal(t, []string{"The two password fields didn't match."}, verr.Fields["non_field_errors"])
	})

	t.Run("blank fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, models.RegisterInput{Username: " "})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		for _, field := range []string{"username", "email", "password1", "password2"} {
			assert.Equal(t, []string{"This field may not be blank."}, verr.Fields[field], field)
		}
	})

	t.Run("username and email taken", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{ID: 9}, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(&models.UserDB{ID: 9}, nil)

		_, _, err := svc.Register(ctx, valid)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"A user with that username already exists."}, verr.Fields["username"])
		assert.Equal(t, []string{"A user is already registered with this e-mail address."}, verr.Fields["email"])
	})

	t.Run("store reports duplicate email", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), models.ErrDuplicateEmail)

		_, _, err := svc.Register(ctx, valid)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"A user is already registered with this e-mail address."}, verr.Fields["email"])
	})

	t.Run("reader error", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, dbErr)

		_, _, err := svc.Register(ctx, valid)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("writer error", func(t *testing.T) {
		saveErr := errors.New("save error")
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), saveErr)

		_, _, err := svc.Register(ctx, valid)
		assert.ErrorIs(t, err, saveErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockJWTGenerator(ctrl)
	mockRevoker := NewMockTokenRevoker(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	activeUser := &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed), IsActive: true, IsStaff: true}
	inactiveUser := &models.UserDB{ID: 2, Username: "bob", PasswordHash: string(hashed), IsActive: false}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  "password123",
			user:      activeUser,
			jwtToken:  "token123",
			wantToken: "token123",
		},
		{
			name:     "unknown user",
			username: "nobody",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			username: "bob",
			password: "password123",
			user:     inactiveUser,
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrongpass",
			user:     activeUser,
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "password123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			username: "alice",
			password: "password123",
			user:     activeUser,
			jwtErr:   errors.New("jwt error"),
			wantErr:  errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.user.IsActive && tt.password == "password123" {
				mockJWT.EXPECT().Generate(gomock.Any(), tt.user.ID, tt.user.IsStaff).Return(tt.jwtToken, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.user, user)
		})
	}

	t.Run("blank credentials", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "", "")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "username")
		assert.Contains(t, verr.Fields, "password")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := NewMockTokenRevoker(ctrl)
	svc := NewAuthService(
		NewMockUserReader(ctrl),
		NewMockUserWriter(ctrl),
		NewMockJWTGenerator(ctrl),
		mockRevoker,
	)

	principal := models.Principal{UserID: 1, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("revokes until expiry", func(t *testing.T) {
		mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
				return nil
			})

		assert.NoError(t, svc.Logout(context.Background(), principal))
	})

	t.Run("revoker error", func(t *testing.T) {
		redisErr := errors.New("redis down")
		mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-1", gomock.Any()).Return(redisErr)

		assert.ErrorIs(t, svc.Logout(context.Background(), principal), redisErr)
	})
}
