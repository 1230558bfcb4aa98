// Package validation provides request validation for inventory resources.
//
// It wraps go-playground/validator with custom validators for the inventory
// enumerations (cabinet attachment and fastener types, rack orientation and
// depth, network speed and interconnect), so request types can declare their
// constraints as struct tags:
//
//	type CabinetRequest struct {
//	    Attachment string `validate:"required,cabinet_attachment"`
//	}
//
// Validation failures come back as a ValidationResult with field-level
// errors suitable for direct serialization into an error response.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rackd/rackd/models"
)

// Validator validates request structs against their constraint tags.
type Validator struct {
	validate *validator.Validate
}

// ValidationError is a single field-level validation failure.
type ValidationError struct {
	// Field is the name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult is the outcome of validating one request.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// New creates a Validator with the inventory enum validators registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	register := func(tag string, valid func(string) bool) {
		// Registration only fails for an empty tag name.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}

	register("cabinet_attachment", func(s string) bool { return models.CabinetAttachment(s).Valid() })
	register("cabinet_fastener", func(s string) bool { return models.CabinetFastener(s).Valid() })
	register("rack_orientation", func(s string) bool { return models.RackOrientation(s).Valid() })
	register("rack_depth", func(s string) bool { return models.RackDepth(s).Valid() })
	register("network_speed", func(s string) bool { return models.NetworkSpeed(s).Valid() })
	register("network_interconnect", func(s string) bool { return models.NetworkInterconnect(s).Valid() })

	return &Validator{validate: v}
}

// ValidateStruct validates a request struct and collects every failure.
func (v *Validator) ValidateStruct(s interface{}) *ValidationResult {
	err := v.validate.Struct(s)
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "request", Message: err.Error()}},
		}
	}

	result := &ValidationResult{Valid: false}
	for _, fe := range verrs {
		result.Errors = append(result.Errors, ValidationError{
			Field:   fieldName(fe),
			Message: message(fe),
			Value:   fe.Value(),
		})
	}
	return result
}

// fieldName converts the validator's namespaced field to the JSON-ish name
// clients see, e.g. "CabinetRequest.RackUnits" becomes "rack_units".
func fieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "cabinet_attachment":
		return enumMessage(models.CabinetAttachments)
	case "cabinet_fastener":
		return enumMessage(models.CabinetFasteners)
	case "rack_orientation":
		return enumMessage(models.RackOrientations)
	case "rack_depth":
		return enumMessage(models.RackDepths)
	case "network_speed":
		return enumMessage(models.NetworkSpeeds)
	case "network_interconnect":
		return enumMessage(models.NetworkInterconnects)
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func enumMessage[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return "must be one of: " + strings.Join(names, ", ")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
