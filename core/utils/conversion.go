package utils

import (
	"strings"
)

// ToBool converts query and form values to bool.
// It accepts bool, integers (1=true) and strings ("1", "true", "yes", "on").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		return parseBool(v)
	case []byte:
		return parseBool(string(v))
	default:
		return false
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
