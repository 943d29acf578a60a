package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/leaguelink/backend/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves. The typical pattern is a struct with validator
// tags whose Validate method calls validation.Struct.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance. Field names in error
// reports come from the `json` tag, not the Go field name, so messages
// match what the client actually sent (userId, not UserID).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v against its validator tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the request body into payload and validates it.
//
// Binding failures (malformed JSON, type mismatches) become a 400
// "Invalid JSON body" envelope. Validation failures become a 400 whose
// message names the offending fields. payload must be a pointer so
// Echo's Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid JSON body")
	}

	if err := payload.Validate(); err != nil {
		return toBadRequest(err)
	}

	return nil
}

// toBadRequest flattens a validator error into a single client-facing
// message. Missing required fields are reported together; any other
// rule failures are appended individually.
func toBadRequest(err error) *errs.HTTPError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewBadRequestError("Validation failed")
	}

	var missing []string
	var invalid []string

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required":
			missing = append(missing, field)
		case "email":
			invalid = append(invalid, field+" must be a valid email address")
		case "min":
			if fieldErr.Type().Kind() == reflect.String {
				invalid = append(invalid, fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param()))
			} else {
				invalid = append(invalid, fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()))
			}
		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				invalid = append(invalid, fmt.Sprintf("%s must not exceed %s characters", field, fieldErr.Param()))
			} else {
				invalid = append(invalid, fmt.Sprintf("%s must not exceed %s", field, fieldErr.Param()))
			}
		case "oneof":
			invalid = append(invalid, fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param()))
		case "url":
			invalid = append(invalid, field+" must be a valid URL")
		default:
			if fieldErr.Param() != "" {
				invalid = append(invalid, fmt.Sprintf("%s: %s:%s", field, fieldErr.Tag(), fieldErr.Param()))
			} else {
				invalid = append(invalid, fmt.Sprintf("%s: %s", field, fieldErr.Tag()))
			}
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, strings.Join(invalid, "; "))
	}

	return errs.NewBadRequestError(strings.Join(parts, "; "))
}
