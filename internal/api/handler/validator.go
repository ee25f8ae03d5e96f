package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in messages come from the param or json tag.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"param", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("nocontrol", noControl)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
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
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "nocontrol":
		return field + " must not contain control characters"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// noControl rejects strings holding control characters such as NUL or newline.
func noControl(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}
