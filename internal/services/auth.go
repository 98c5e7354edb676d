package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users. Lookups return nil when nothing matches.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, isStaff bool) (string, error)
}

// TokenRevoker revokes tokens by their ID.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register validates the input, creates an active user and returns it with a fresh token.
// A blank name defaults to the username.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.UserDB, string, error) {
	log := logger.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	verr := NewValidationError()
	usernameOK := checkField(verr, "username", in.Username, usernameRules()...)
	emailOK := checkField(verr, "email", in.Email, emailRules()...)
	if in.Name != "" {
		checkField(verr, "name", in.Name, maxLen(30))
	}
	if checkField(verr, "password1", in.Password1, notBlank()) && len(in.Password1) < minPasswordLength {
		verr.Add("password1", msgShortPassword)
	}
	if checkField(verr, "password2", in.Password2, notBlank()) && in.Password1 != in.Password2 {
		verr.Add("non_field_errors", msgPasswordsDiffer)
	}

	if usernameOK {
		existing, err := svc.reader.GetByUsername(ctx, in.Username)
		if err != nil {
			log.Errorw("failed to check username", "err", err)
			return nil, "", err
		}
		if existing != nil {
			verr.Add("username", msgRegisterUsernameTaken)
		}
	}
	if emailOK {
		existing, err := svc.reader.GetByEmail(ctx, in.Email)
		if err != nil {
			log.Errorw("failed to check email", "err", err)
			return nil, "", err
		}
		if existing != nil {
			verr.Add("email", msgRegisterEmailTaken)
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password1), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	name := in.Name
	if name == "" {
		name = in.Username
	}

	id, err := svc.writer.Create(ctx, &models.UserDB{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		IsActive:     true,
	})
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		verr.Add("username", msgRegisterUsernameTaken)
		return nil, "", verr
	case errors.Is(err, models.ErrDuplicateEmail):
		verr.Add("email", msgRegisterEmailTaken)
		return nil, "", verr
	case err != nil:
		log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to read created user", "id", id, "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.IsStaff)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login authenticates an active user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)

	verr := NewValidationError()
	checkField(verr, "username", username, notBlank())
	checkField(verr, "password", password, notBlank())
	if err := verr.OrNil(); err != nil {
		return "", nil, err
	}

	user, err := svc.reader.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil || !user.IsActive {
		log.Infow("login for unknown or inactive user", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.IsStaff)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the principal's token until it expires.
func (svc *AuthService) Logout(ctx context.Context, principal models.Principal) error {
	ttl := time.Until(principal.ExpiresAt)
	if err := svc.revoker.Revoke(ctx, principal.TokenID, ttl); err != nil {
		logger.FromContext(ctx).Errorw("failed to revoke token", "user_id", principal.UserID, "err", err)
		return err
	}
	return nil
}
