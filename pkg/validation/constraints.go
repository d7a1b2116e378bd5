package validation

import (
	"github.com/asaskevich/govalidator"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/xeipuuv/gojsonschema"

	"appcore/pkg/apperr"
	"appcore/pkg/dotpath"
)

// ConstraintFunc is the domain-constraint hook a request type may attach. It
// receives the normalized data after structural validation has succeeded and
// returns a structured failure (typically bad-request content) on violation.
type ConstraintFunc func(data map[string]interface{}) error

// Constraints combines several constraint checks into one; the first
// violation wins.
func Constraints(fns ...ConstraintFunc) ConstraintFunc {
	return func(data map[string]interface{}) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(data); err != nil {
				return err
			}
		}
		return nil
	}
}

// FromOzzo converts an ozzo-validation error into the structural-failure
// kind, mapping each field to its violation message so that constraint
// failures render exactly like missing-field failures at the boundary.
func FromOzzo(err error) error {
	if err == nil {
		return nil
	}
	if errs, ok := err.(ozzo.Errors); ok {
		details := make(map[string]interface{}, len(errs))
		for field, fieldErr := range errs {
			if fieldErr != nil {
				details[field] = fieldErr.Error()
			}
		}
		return apperr.NewBadRequestContent("constraint violation", details)
	}
	return apperr.NewBadRequestContent("constraint violation", map[string]interface{}{
		"error": err.Error(),
	}).WithCause(err)
}

// SchemaConstraint validates the normalized data against a JSON schema given
// as a Go map. Violations are reported per result field.
func SchemaConstraint(schema map[string]interface{}) ConstraintFunc {
	return func(data map[string]interface{}) error {
		if len(schema) == 0 {
			return nil
		}

		schemaLoader := gojsonschema.NewGoLoader(schema)
		documentLoader := gojsonschema.NewGoLoader(data)

		result, err := gojsonschema.Validate(schemaLoader, documentLoader)
		if err != nil {
			return apperr.NewInternal("schema validation error", nil).WithCause(err)
		}

		if !result.Valid() {
			details := make(map[string]interface{}, len(result.Errors()))
			for _, desc := range result.Errors() {
				details[desc.Field()] = desc.Description()
			}
			return apperr.NewBadRequestContent("constraint violation", details)
		}
		return nil
	}
}

// FieldFormat checks the string value at a dotted path against a format
// predicate such as govalidator.IsEmail. Absent fields pass; optionality is
// the specification's concern, not the constraint's.
func FieldFormat(path string, valid func(string) bool, message string) ConstraintFunc {
	return func(data map[string]interface{}) error {
		value := dotpath.Lookup(data, path, nil)
		if value == nil {
			return nil
		}
		s, ok := value.(string)
		if !ok || !valid(s) {
			return apperr.NewBadRequestContent("constraint violation", map[string]interface{}{
				path: message,
			})
		}
		return nil
	}
}

// EmailField constrains the field at path to a valid email address.
func EmailField(path string) ConstraintFunc {
	return FieldFormat(path, govalidator.IsEmail, "must be a valid email address")
}

// URLField constrains the field at path to a valid URL.
func URLField(path string) ConstraintFunc {
	return FieldFormat(path, govalidator.IsURL, "must be a valid URL")
}

// UUIDField constrains the field at path to a valid UUID.
func UUIDField(path string) ConstraintFunc {
	return FieldFormat(path, govalidator.IsUUID, "must be a valid UUID")
}
