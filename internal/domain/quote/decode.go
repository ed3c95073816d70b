package quote

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The provider's payloads vary in casing, nesting and value types between
// product lines and even between records of one response. Every field is
// therefore read through an ordered list of candidate paths; a path that is
// absent or holds an unusable value simply falls through to the next one.

// lookup resolves a dotted path such as "company_base.name" or
// "base_plans.0.benefits". Keys match ignoring case, '_' and '-'.
func lookup(obj map[string]any, path string) (any, bool) {
	var current any = obj
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			v, ok := field(node, part)
			if !ok {
				return nil, false
			}
			current = v
		case RawRecord:
			v, ok := field(node, part)
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// field prefers an exact key, then a case-insensitive match, then a
// normalized match. Ties go to the lexically smallest key.
func field(obj map[string]any, key string) (any, bool) {
	if v, ok := obj[key]; ok {
		return v, true
	}
	want := normalizeKey(key)
	var folded, normalized string
	for k := range obj {
		switch {
		case strings.EqualFold(k, key):
			if folded == "" || k < folded {
				folded = k
			}
		case normalizeKey(k) == want:
			if normalized == "" || k < normalized {
				normalized = k
			}
		}
	}
	if folded != "" {
		return obj[folded], true
	}
	if normalized != "" {
		return obj[normalized], true
	}
	return nil, false
}

func normalizeKey(key string) string {
	key = strings.ToLower(key)
	return strings.NewReplacer("_", "", "-", "").Replace(key)
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case RawRecord:
		return obj, true
	default:
		return nil, false
	}
}

// firstString returns the first non-blank string (or number rendered as text)
// found along paths.
func firstString(obj map[string]any, paths ...string) string {
	for _, path := range paths {
		v, ok := lookup(obj, path)
		if !ok {
			continue
		}
		if s, ok := coerceString(v); ok {
			return s
		}
	}
	return ""
}

// firstNumber returns the first finite, non-negative number found along paths,
// or 0 when none qualifies.
func firstNumber(obj map[string]any, paths ...string) float64 {
	for _, path := range paths {
		v, ok := lookup(obj, path)
		if !ok {
			continue
		}
		if n, ok := coerceNumber(v); ok {
			return n
		}
	}
	return 0
}

// firstList returns the first JSON array found along paths.
func firstList(obj map[string]any, paths ...string) []any {
	for _, path := range paths {
		v, ok := lookup(obj, path)
		if !ok {
			continue
		}
		if list, ok := v.([]any); ok {
			return list
		}
	}
	return nil
}

func coerceString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		return s, s != ""
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case json.Number:
		return val.String(), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	default:
		return "", false
	}
}

func coerceNumber(v any) (float64, bool) {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int64:
		n = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(val))
		if cleaned == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}
	return n, true
}
