package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ubatuba-events/events-client/internal/core/domain"
)

// FieldErrors maps a field name to a human-readable validation message.
// Callers render the messages inline, per field; submission is blocked
// until the map would be empty.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fe[f])
	}
	return strings.Join(msgs, "; ")
}

// EventValidator checks an EventInput before any network call is made.
// The remote API validates again at rest; this mirror exists for immediate
// feedback.
type EventValidator struct {
	v *validator.Validate
}

// NewEventValidator returns an EventValidator with the category rule
// registered.
func NewEventValidator() *EventValidator {
	v := validator.New()

	// "eventcategory" restricts a value to the fixed category set.
	_ = v.RegisterValidation("eventcategory", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(fl.Field().String())
	})

	return &EventValidator{v: v}
}

// Validate returns nil for a submittable input, or a FieldErrors describing
// every failing field.
func (ev *EventValidator) Validate(input domain.EventInput) error {
	err := ev.v.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fe := make(FieldErrors, len(ve))
	for _, f := range ve {
		field := strings.ToLower(f.Field())
		fe[field] = fieldMessage(field, f)
	}
	return fe
}

// fieldMessage converts a single validation failure into a human-readable
// message.
func fieldMessage(field string, f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, f.Param())
	case "eventcategory":
		names := make([]string, len(domain.EventCategories))
		for i, c := range domain.EventCategories {
			names[i] = string(c)
		}
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, f.Tag())
	}
}
