package domain

import (
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

// requiredStrings validates a raw request payload for a use case. Presence of
// every field is checked before any type, so a missing field never falls
// through to a type error. Fields not listed are ignored.
func requiredStrings(useCase string, payload map[string]any, fields ...string) (map[string]string, error) {
	for _, f := range fields {
		if !truthy(payload[f]) {
			return nil, internal_errors.Invariant(useCase + ".NOT_CONTAIN_NEEDED_PROPERTY")
		}
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := payload[f].(string)
		if !ok {
			return nil, internal_errors.Invariant(useCase + ".NOT_MEET_DATA_TYPE_SPECIFICATION")
		}
		out[f] = s
	}
	return out, nil
}

// truthy mirrors the presence rules of the HTTP payload contract: absent keys,
// nulls, empty strings, zero numbers and false all count as missing.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64: // json numbers decode as float64
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
