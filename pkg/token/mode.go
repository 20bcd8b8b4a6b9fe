package token

import (
	"fmt"
	"strings"
)

// BigIntMode controls how numeric values are returned by Validate.
type BigIntMode uint8

const (
	// BigIntNever narrows numeric identifiers and expirations to int64 and
	// fails with ErrRange when they do not fit.
	BigIntNever BigIntMode = iota
	// BigIntAlways returns numeric identifiers as *big.Int and fills
	// Claims.ExpiresBig.
	BigIntAlways
)

func (m BigIntMode) String() string {
	switch m {
	case BigIntNever:
		return "never"
	case BigIntAlways:
		return "always"
	default:
		return fmt.Sprintf("BigIntMode(%d)", uint8(m))
	}
}

// ParseBigIntMode parses "never" or "always", case insensitive.
func ParseBigIntMode(s string) (BigIntMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never", "":
		return BigIntNever, nil
	case "always":
		return BigIntAlways, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBigIntMode, s)
	}
}

// UnmarshalText lets BigIntMode be read from environment variables and text configs.
func (m *BigIntMode) UnmarshalText(text []byte) error {
	v, err := ParseBigIntMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m BigIntMode) MarshalText() ([]byte, error) {
	if m > BigIntAlways {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBigIntMode, uint8(m))
	}
	return []byte(m.String()), nil
}
