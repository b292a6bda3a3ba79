package languages

import (
	"encoding/json"
	"maps"
	"math"
)

// maxExactFloat is the largest integer a float64 holds exactly.
const maxExactFloat = 1 << 53

// Record is one language as returned by the remote API.
//
// Typical keys are "id", "abbreviation", "name" (native name) and
// "englishName"; anything else is carried through untouched.
type Record map[string]any

// ID returns the record's integer id. It reports false when the field is
// missing or does not hold an integral number.
func (r Record) ID() (int, bool) {
	switch v := r["id"].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > maxExactFloat {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// EnglishName returns the "englishName" field, or "" if absent.
func (r Record) EnglishName() string { return r.str("englishName") }

// Name returns the native "name" field, or "" if absent.
func (r Record) Name() string { return r.str("name") }

// Abbreviation returns the "abbreviation" field (e.g. "en"), or "" if absent.
func (r Record) Abbreviation() string { return r.str("abbreviation") }

func (r Record) str(key string) string {
	s, _ := r[key].(string)
	return s
}

// clone returns a shallow copy. Nested values are shared.
func (r Record) clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}
