package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAspectRatio parses a "w:h" string such as "16:9" into a ratio
func ParseAspectRatio(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid aspect ratio %q, expected w:h", s)
	}

	numerator, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio numerator %q: %w", parts[0], err)
	}
	denominator, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio denominator %q: %w", parts[1], err)
	}
	if numerator <= 0 || denominator <= 0 {
		return 0, fmt.Errorf("aspect ratio components must be positive: %q", s)
	}

	return numerator / denominator, nil
}
