package validators

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/avelichko/go-cms-client/models"
	"github.com/go-playground/validator/v10"
)

// inputValidator validates user-entered payloads before they reach the
// remote APIs. It wraps go-playground/validator and registers the custom
// password_strength rule referenced by struct tags in the models package.
type inputValidator struct {
	validate *validator.Validate
}

// NewInputValidator constructs the default [Validator] implementation.
func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration always succeeds for a non-nil func with a valid tag name.
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	return &inputValidator{validate: v}
}

// Validate implements [Validator]. Supported inputs are the request payload
// types from the models package; anything else returns
// [ErrUnsupportedType]. For [models.ArticleDraft], passing no field names
// applies create semantics (title and content required) while naming fields
// validates only those.
func (iv *inputValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch in := value.(type) {
	case models.RegisterRequest:
		return iv.mapStructErrors(iv.validate.StructCtx(ctx, in))
	case models.ChangePasswordRequest:
		return iv.mapStructErrors(iv.validate.StructCtx(ctx, in))
	case models.ProfileUpdate:
		return iv.mapStructErrors(iv.validate.StructCtx(ctx, in))
	case models.ArticleDraft:
		return iv.validateDraft(ctx, in, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (iv *inputValidator) validateDraft(ctx context.Context, draft models.ArticleDraft, fields ...string) error {
	if len(fields) == 0 {
		// create semantics
		if draft.Title == "" {
			return ErrEmptyTitle
		}
		if draft.Content == "" {
			return ErrEmptyContent
		}
		return iv.mapStructErrors(iv.validate.StructCtx(ctx, draft))
	}

	return iv.mapStructErrors(iv.validate.StructPartialCtx(ctx, draft, fields...))
}

func (iv *inputValidator) mapStructErrors(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Username":
			return ErrInvalidUsername
		case "Email":
			return ErrInvalidEmail
		case "Password", "NewPassword":
			return ErrWeakPassword
		case "FirstName", "LastName":
			return ErrInvalidName
		case "Title":
			return ErrEmptyTitle
		case "Content":
			return ErrEmptyContent
		case "Author":
			return ErrInvalidAuthor
		default:
			return fmt.Errorf("validation: field %s failed rule %s", fe.Field(), fe.Tag())
		}
	}

	return nil
}

// isStrongPassword enforces the minimum password policy: at least eight
// characters including one letter and one digit.
func isStrongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
