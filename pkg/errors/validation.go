package errors

import (
	"strconv"
	"strings"
)

// ParseValue parses a single integer value typed by the user.
// Surrounding whitespace is ignored; anything else that is not a base-10
// integer yields an INVALID_INPUT error.
func ParseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "value cannot be empty")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "%q is not a number", s)
	}
	return v, nil
}

// ParseValues parses a comma-separated list of integers ("5,3,8").
// Empty items are skipped so trailing commas are tolerated.
func ParseValues(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := ParseValue(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ValidateCount checks that n lies in [1, max]. The visualizer is tuned for
// instances small enough to watch, so callers pass a small max.
func ValidateCount(what string, n, max int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "%s must be at least 1 (got %d)", what, n)
	}
	if n > max {
		return New(ErrCodeInvalidInput, "%s must be at most %d (got %d)", what, max, n)
	}
	return nil
}
