package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field messages
const (
	msgBlank           = "This field may not be blank."
	msgNull            = "This field may not be null."
	msgInvalidEmail    = "Enter a valid email address."
	msgInvalidURL      = "Enter a valid URL."
	msgInvalidUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgInvalidDate     = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgInvalidPhone    = "Enter a valid phone number."
	msgShortPassword   = "This password is too short. It must contain at least 8 characters."
	msgPasswordsDiffer = "The two password fields didn't match."

	msgUsernameTaken         = "user with this username already exists."
	msgEmailTaken            = "user with this email already exists."
	msgRegisterUsernameTaken = "A user with that username already exists."
	msgRegisterEmailTaken    = "A user is already registered with this e-mail address."
)

const (
	minPasswordLength = 8
	dateLayout        = "2006-01-02"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

type rule struct {
	tag string
	msg string
}

func notBlank() rule {
	return rule{tag: "notblank", msg: msgBlank}
}

func maxLen(n int) rule {
	return rule{
		tag: fmt.Sprintf("max=%d", n),
		msg: fmt.Sprintf("Ensure this field has no more than %d characters.", n),
	}
}

func choice(tag, value string) rule {
	return rule{tag: "omitempty," + tag, msg: fmt.Sprintf("\"%s\" is not a valid choice.", value)}
}

// checkField records the message of the first rule value breaks. It reports whether value passed.
func checkField(verr *ValidationError, field, value string, rules ...rule) bool {
	for _, r := range rules {
		if err := validate.Var(value, r.tag); err != nil {
			verr.Add(field, r.msg)
			return false
		}
	}
	return true
}

func usernameRules() []rule {
	return []rule{notBlank(), maxLen(30), {tag: "username", msg: msgInvalidUsername}}
}

func emailRules() []rule {
	return []rule{notBlank(), maxLen(254), {tag: "email", msg: msgInvalidEmail}}
}
