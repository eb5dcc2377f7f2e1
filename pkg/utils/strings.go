package utils

import (
	"strconv"
	"strings"
)

// ParseFloat parses a decimal amount such as "49.99". Empty input is an error.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
