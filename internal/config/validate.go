package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks settings for values that cannot be acted on.
func Validate(s *Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Configf("invalid settings: %v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.Config(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "Burn":
		return fmt.Sprintf("invalid burn value %v: must be between 1 and 1000", fe.Value())
	default:
		return fmt.Sprintf("invalid %s value %v: failed %q", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
	}
}
