package token

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTTL is the lifetime of tokens signed without an explicit expiration.
const DefaultTTL = time.Hour

var humanDuration = regexp.MustCompile(`^(-?(?:\d+)?\.?\d+) *(milliseconds?|msecs?|ms|seconds?|secs?|s|minutes?|mins?|m|hours?|hrs?|h|days?|d|weeks?|w|years?|yrs?|y)?$`)

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = time.Duration(365.25 * float64(day))
)

// ParseTTL parses a token lifetime. It accepts Go duration syntax ("90m",
// "1h30m") and human forms such as "2 days", "1.5h", "3 weeks" or "1y". A bare
// number is read as milliseconds. The result is truncated to whole seconds
// and must be at least one second.
func ParseTTL(s string) (time.Duration, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTTL)
	}

	d, err := time.ParseDuration(in)
	if err != nil {
		d, err = parseHumanDuration(in)
		if err != nil {
			return 0, err
		}
	}

	d = d.Truncate(time.Second)
	if d < time.Second {
		return 0, fmt.Errorf("%w: %q is shorter than one second", ErrInvalidTTL, s)
	}
	return d, nil
}

func parseHumanDuration(s string) (time.Duration, error) {
	m := humanDuration.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, s)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, s)
	}

	unit := time.Millisecond
	switch m[2] {
	case "years", "year", "yrs", "yr", "y":
		unit = year
	case "weeks", "week", "w":
		unit = week
	case "days", "day", "d":
		unit = day
	case "hours", "hour", "hrs", "hr", "h":
		unit = time.Hour
	case "minutes", "minute", "mins", "min", "m":
		unit = time.Minute
	case "seconds", "second", "secs", "sec", "s":
		unit = time.Second
	}

	v := n * float64(unit)
	if v >= math.MaxInt64 || v <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidTTL, s)
	}
	return time.Duration(v), nil
}
