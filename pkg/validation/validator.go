package validation

import (
	"sort"

	"appcore/pkg/apperr"
)

// Result is the outcome of validating a payload against a FieldSpec.
//
// Missing maps each required-but-empty field to "required" and Unauthorized
// lists every payload key not declared by the specification, both keyed by
// dotted path. When either is non-empty the result is invalid and Data is
// nil; otherwise Data holds the normalized projection of the payload: only
// declared keys survive into it, recursively.
type Result struct {
	Missing      map[string]string
	Unauthorized []string
	Data         map[string]interface{}
}

// Valid reports whether the payload passed structural validation.
func (r *Result) Valid() bool {
	return len(r.Missing) == 0 && len(r.Unauthorized) == 0
}

// DetailsKeyUnauthorized is the detail-map key under which Err reports the
// ordered unauthorized field paths.
const DetailsKeyUnauthorized = "unauthorized_fields"

// Err builds the structural failure for an invalid result: a bad-request
// error whose details carry every missing path mapped to "required" plus the
// ordered unauthorized paths under DetailsKeyUnauthorized. It returns nil
// for a valid result.
func (r *Result) Err() *apperr.Error {
	if r.Valid() {
		return nil
	}
	details := make(map[string]interface{}, len(r.Missing)+1)
	for path, reason := range r.Missing {
		details[path] = reason
	}
	if len(r.Unauthorized) > 0 {
		details[DetailsKeyUnauthorized] = append([]string(nil), r.Unauthorized...)
	}
	return apperr.NewBadRequestContent("", details)
}

// Validate checks payload against spec and returns the full outcome; missing
// and unauthorized detection both run to completion, never short-circuiting
// on the first failure.
//
// A required field counts as missing when its key is absent, its value is
// nil, or its value is the empty string; any other value (including 0,
// false, and empty collections) is present. Key comparison is exact and
// case-sensitive. A non-map value under a subtree key is treated as an
// absent subtree: every required leaf below is reported missing with its
// full dotted path.
//
// Validation is deterministic: keys are walked in sorted order, so repeated
// calls with identical inputs produce identical results, including the
// order of Unauthorized.
func Validate(spec FieldSpec, payload map[string]interface{}) *Result {
	r := &Result{Missing: make(map[string]string)}
	data := walk(spec, payload, "", r)
	if r.Valid() {
		r.Data = data
	}
	return r
}

func walk(spec FieldSpec, payload map[string]interface{}, prefix string, r *Result) map[string]interface{} {
	data := make(map[string]interface{})

	for _, key := range sortedKeys(payload) {
		if _, declared := spec[key]; !declared {
			r.Unauthorized = append(r.Unauthorized, joinPath(prefix, key))
		}
	}

	for _, key := range sortedSpecKeys(spec) {
		path := joinPath(prefix, key)

		if sub, ok := subSpec(spec[key]); ok {
			subPayload, isMap := payload[key].(map[string]interface{})
			if !isMap {
				// Absent or malformed subtree: report every required
				// leaf below with its full dotted path.
				walk(sub, map[string]interface{}{}, path, r)
				continue
			}
			data[key] = walk(sub, subPayload, path, r)
			continue
		}

		required, _ := spec[key].(bool)
		value, present := payload[key]
		if required && (!present || isEmpty(value)) {
			r.Missing[path] = "required"
			continue
		}
		if present {
			data[key] = value
		}
	}

	return data
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSpecKeys(s FieldSpec) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
