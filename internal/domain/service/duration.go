package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hourRe   = regexp.MustCompile(`^(\d+\.?\d*)\s*h(?:r|ours?)?$`)
	minuteRe = regexp.MustCompile(`^(\d+)\s*m(?:in|inutes?)?$`)
)

// ParseDurationMinutes accepts the duration strings admins type into the
// service form: "30m", "45 min", "1hr", "1.5h", "2 hours", or a bare number
// of minutes.
func ParseDurationMinutes(s string) (int, error) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, ErrInvalidDuration
	}

	if m := hourRe.FindStringSubmatch(cleaned); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		minutes := int(math.Round(hours * 60))
		if minutes <= 0 {
			return 0, ErrInvalidDuration
		}
		return minutes, nil
	}

	if m := minuteRe.FindStringSubmatch(cleaned); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil || minutes <= 0 {
			return 0, ErrInvalidDuration
		}
		return minutes, nil
	}

	minutes, err := strconv.Atoi(cleaned)
	if err != nil || minutes <= 0 {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}

// FormatDuration renders minutes back into the short form shown in listings.
func FormatDuration(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes%60 == 0:
		return fmt.Sprintf("%d hr", minutes/60)
	default:
		return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
	}
}
