// Package validation implements the declarative request-field validation
// engine: a FieldSpec tree names the accepted fields, Validate checks a raw
// payload against it, and constraint adapters cover the domain checks that
// run once structural validation has passed.
package validation

import "fmt"

// FieldSpec declares the fields a request accepts. Each value is either a
// bool (true = required, false = optional) or a nested FieldSpec for a
// keyed sub-payload. Declared once per request type and never mutated.
//
//	var spec = validation.FieldSpec{
//		"email": true,
//		"phone": false,
//		"address": validation.FieldSpec{
//			"city": true,
//			"zip":  false,
//		},
//	}
type FieldSpec map[string]interface{}

// Validate checks the structural invariant of the specification tree: every
// leaf is a bool and every non-leaf is itself a valid FieldSpec. It returns
// the dotted path of the first offending entry.
func (s FieldSpec) Validate() error {
	return s.validate("")
}

func (s FieldSpec) validate(prefix string) error {
	for key, value := range s {
		path := joinPath(prefix, key)
		switch v := value.(type) {
		case bool:
		case FieldSpec:
			if err := v.validate(path); err != nil {
				return err
			}
		case map[string]interface{}:
			if err := FieldSpec(v).validate(path); err != nil {
				return err
			}
		default:
			return fmt.Errorf("validation: field %q must be declared as bool or nested spec, got %T", path, v)
		}
	}
	return nil
}

// subSpec converts a declared value into a FieldSpec when it is a subtree.
func subSpec(value interface{}) (FieldSpec, bool) {
	switch v := value.(type) {
	case FieldSpec:
		return v, true
	case map[string]interface{}:
		return FieldSpec(v), true
	}
	return nil, false
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
