package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationPattern = regexp.MustCompile(`^(\d+) minutes$`)

// FormatDuration renders whole minutes in the "<N> minutes" wire form.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d minutes", minutes)
}

// ParseDuration reads the "<N> minutes" wire form back into whole minutes.
func ParseDuration(s string) (int, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed duration %q: want \"<N> minutes\"", s)
	}

	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", s, err)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("duration %q must be a positive number of minutes", s)
	}

	return minutes, nil
}
