package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

// AccountService reads and edits user profiles and account details.
type AccountService struct {
	reader UserReader
	writer UserWriter
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(reader UserReader, writer UserWriter) *AccountService {
	return &AccountService{reader: reader, writer: writer}
}

// GetProfile returns the active user with the given id.
func (svc *AccountService) GetProfile(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdatePersonalInfo applies patch to the public profile of user id on behalf of principal.
// Only name, avatar, header, description, location and site can be changed here.
func (svc *AccountService) UpdatePersonalInfo(
	ctx context.Context,
	principal models.Principal,
	id int64,
	patch models.PersonalInfoPatch,
) (*models.UserDB, error) {
	user, err := svc.AuthorizeProfileUpdate(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	verr := NewValidationError()
	fields := map[string]any{}

	requiredString(verr, fields, "name", patch.Name, maxLen(30))
	optionalString(verr, fields, "avatar", patch.Avatar, maxLen(255))
	optionalString(verr, fields, "header", patch.Header, maxLen(255))
	optionalString(verr, fields, "description", patch.Description, maxLen(160))
	optionalString(verr, fields, "location", patch.Location, maxLen(20))
	optionalString(verr, fields, "site", patch.Site, maxLen(100), rule{tag: "omitempty,url", msg: msgInvalidURL})

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return svc.apply(ctx, user.ID, fields)
}

// AuthorizeProfileUpdate loads profile id and checks that principal may edit it.
func (svc *AccountService) AuthorizeProfileUpdate(ctx context.Context, principal models.Principal, id int64) (*models.UserDB, error) {
	user, err := svc.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanWrite(principal, user.ID) {
		logger.FromContext(ctx).Infow("profile update denied", "user_id", user.ID, "principal", principal.UserID)
		return nil, ErrForbidden
	}
	return user, nil
}

// GetAccount returns the principal's own account.
func (svc *AccountService) GetAccount(ctx context.Context, principal models.Principal) (*models.UserDB, error) {
	return svc.GetProfile(ctx, principal.UserID)
}

// UpdateAccount applies patch to the principal's own account details.
func (svc *AccountService) UpdateAccount(
	ctx context.Context,
	principal models.Principal,
	patch models.AccountPatch,
) (*models.UserDB, error) {
	user, err := svc.GetProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	verr := NewValidationError()
	fields := map[string]any{}

	requiredString(verr, fields, "username", patch.Username, usernameRules()...)
	requiredString(verr, fields, "email", patch.Email, emailRules()...)
	requiredString(verr, fields, "name", patch.Name, maxLen(30))
	optionalString(verr, fields, "first_name", patch.FirstName, maxLen(30))
	optionalString(verr, fields, "last_name", patch.LastName, maxLen(30))
	optionalString(verr, fields, "phone_number", patch.PhoneNumber, maxLen(11), rule{tag: "omitempty,number", msg: msgInvalidPhone})
	optionalChoice(verr, fields, "gender", patch.Gender, "oneof="+models.GenderMale+" "+models.GenderFemale)
	optionalChoice(verr, fields, "country", patch.Country, "iso3166_1_alpha2")
	optionalDate(verr, fields, "date_of_birth", patch.DateOfBirth)

	// uniqueness is only looked up for values that passed the field rules
	if patch.Username.Set && !verr.Has("username") {
		if err := svc.checkUnique(ctx, verr, user.ID, "username", fields["username"].(string)); err != nil {
			return nil, err
		}
	}
	if patch.Email.Set && !verr.Has("email") {
		if err := svc.checkUnique(ctx, verr, user.ID, "email", fields["email"].(string)); err != nil {
			return nil, err
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return svc.apply(ctx, user.ID, fields)
}

func (svc *AccountService) checkUnique(ctx context.Context, verr *ValidationError, id int64, field, value string) error {
	var (
		other *models.UserDB
		err   error
		msg   string
	)
	switch field {
	case "username":
		other, err = svc.reader.GetByUsername(ctx, value)
		msg = msgUsernameTaken
	default:
		other, err = svc.reader.GetByEmail(ctx, value)
		msg = msgEmailTaken
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check uniqueness", "field", field, "err", err)
		return err
	}
	if other != nil && other.ID != id {
		verr.Add(field, msg)
	}
	return nil
}

// apply persists fields and returns the re-read user.
func (svc *AccountService) apply(ctx context.Context, id int64, fields map[string]any) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if len(fields) > 0 {
		err := svc.writer.Update(ctx, id, fields)
		switch {
		case errors.Is(err, models.ErrDuplicateUsername):
			verr := NewValidationError()
			verr.Add("username", msgUsernameTaken)
			return nil, verr
		case errors.Is(err, models.ErrDuplicateEmail):
			verr := NewValidationError()
			verr.Add("email", msgEmailTaken)
			return nil, verr
		case err != nil:
			log.Errorw("failed to update user", "id", id, "err", err)
			return nil, err
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to re-read user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// requiredString validates a non-nullable, non-blank field present in the patch.
func requiredString(verr *ValidationError, fields map[string]any, field string, v models.Optional[string], rules ...rule) {
	if !v.Set {
		return
	}
	if v.Null {
		verr.Add(field, msgNull)
		return
	}
	value := strings.TrimSpace(v.Value)
	if checkField(verr, field, value, append([]rule{notBlank()}, rules...)...) {
		fields[field] = value
	}
}

// optionalString validates a nullable field present in the patch. Null clears the column.
func optionalString(verr *ValidationError, fields map[string]any, field string, v models.Optional[string], rules ...rule) {
	if !v.Set {
		return
	}
	if v.Null {
		fields[field] = nil
		return
	}
	value := strings.TrimSpace(v.Value)
	if checkField(verr, field, value, rules...) {
		fields[field] = value
	}
}

// optionalChoice validates an enumerated nullable field. Null or empty clears the column.
func optionalChoice(verr *ValidationError, fields map[string]any, field string, v models.Optional[string], tag string) {
	if !v.Set {
		return
	}
	if v.Null || v.Value == "" {
		fields[field] = nil
		return
	}
	if checkField(verr, field, v.Value, choice(tag, v.Value)) {
		fields[field] = v.Value
	}
}

// optionalDate validates a nullable YYYY-MM-DD date. Null or empty clears the column.
func optionalDate(verr *ValidationError, fields map[string]any, field string, v models.Optional[string]) {
	if !v.Set {
		return
	}
	if v.Null || v.Value == "" {
		fields[field] = nil
		return
	}
	date, err := time.Parse(dateLayout, v.Value)
	if err != nil {
		verr.Add(field, msgInvalidDate)
		return
	}
	fields[field] = date
}
