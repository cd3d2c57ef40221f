package models

import "strconv"

// Loose conversions for open-ended config and payload maps. Node configs come
// from JSON, so numbers arrive as float64 and lists as []any.

// AsString returns the value as a string, or "" when absent or not a string.
func AsString(m map[string]any, key string) string {
	s, _ := m[key].(string)

	return s
}

// AsFloat coerces numeric JSON values; anything else yields the fallback.
func AsFloat(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}

	return fallback
}

// AsInt coerces numeric JSON values to int with a fallback.
func AsInt(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}

	return fallback
}

// AsStringSlice accepts a []any of strings or a single string.
func AsStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))

		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}

		return out
	case string:
		if s == "" {
			return nil
		}

		return []string{s}
	}

	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
