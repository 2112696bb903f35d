package utils

import (
	"strconv"
)

// ParseInt converts value to int, falling back to defaultValue when value is
// empty, malformed or below minValue.
func ParseInt(value string, defaultValue, minValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < minValue {
		return defaultValue
	}

	return result
}
