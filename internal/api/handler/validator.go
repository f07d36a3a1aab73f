package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator, with the domain-specific tags registered.
func NewValidator() *echoValidator {
	v := validator.New()

	// dateonly: a calendar day in YYYY-MM-DD form, no time component.
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		return domain.ValidDate(fl.Field().String())
	})

	// rolename: a role name that can ever be granted to a managed user.
	_ = v.RegisterValidation("rolename", func(fl validator.FieldLevel) bool {
		role, err := domain.ParseRole(fl.Field().String())
		return err == nil && role != domain.RoleSuperadmin
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Field-level failures are
// collected and reported together rather than stopping at the first one.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "alpha":
		return field + " can only contain letters from the alphabet"
	case "dateonly":
		return field + " must be a valid date in YYYY-MM-DD form"
	case "rolename":
		return field + " must be a valid assignable role"
	case "eqfield":
		return field + " must match " + strings.ToLower(fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
