package validation

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// SpecFromMap normalizes a raw string-keyed map (as produced by YAML, JSON
// or configuration decoding) into a FieldSpec and validates its invariant.
func SpecFromMap(raw map[string]interface{}) (FieldSpec, error) {
	spec := make(FieldSpec, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case bool:
			spec[key] = v
		case map[string]interface{}:
			sub, err := SpecFromMap(v)
			if err != nil {
				return nil, err
			}
			spec[key] = sub
		case FieldSpec:
			sub, err := SpecFromMap(v)
			if err != nil {
				return nil, err
			}
			spec[key] = sub
		default:
			return nil, fmt.Errorf("validation: field %q must be declared as bool or nested mapping, got %T", key, v)
		}
	}
	return spec, nil
}

// SpecFromYAML decodes a YAML document into a FieldSpec:
//
//	email: true
//	phone: false
//	address:
//	  city: true
//	  zip: false
func SpecFromYAML(data []byte) (FieldSpec, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("validation: parse spec: %w", err)
	}
	return SpecFromMap(raw)
}

// SpecFromConfig reads a FieldSpec from a viper configuration subtree, for
// hosts that keep request field declarations in their config files.
func SpecFromConfig(v *viper.Viper, key string) (FieldSpec, error) {
	if !v.IsSet(key) {
		return nil, fmt.Errorf("validation: config key %q is not set", key)
	}
	return SpecFromMap(v.GetStringMap(key))
}
