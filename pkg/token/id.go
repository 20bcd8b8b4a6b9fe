package token

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IDKind is the variant held by an ID.
type IDKind uint8

const (
	// IDNone is the zero ID; signing it fails with ErrMissingID.
	IDNone IDKind = iota
	// IDString holds UTF-8 text.
	IDString
	// IDInt holds a native int64.
	IDInt
	// IDBigInt holds an arbitrary-precision integer.
	IDBigInt
)

func (k IDKind) String() string {
	switch k {
	case IDString:
		return "string"
	case IDInt:
		return "int"
	case IDBigInt:
		return "bigint"
	default:
		return "none"
	}
}

// ID is a token identifier: either text or an integer. The zero value is an
// absent identifier.
type ID struct {
	kind IDKind
	str  string
	num  int64
	big  *big.Int
}

// StringID returns a text identifier.
func StringID(s string) ID {
	return ID{kind: IDString, str: s}
}

// IntID returns a numeric identifier held as int64.
func IntID(n int64) ID {
	return ID{kind: IDInt, num: n}
}

// Uint64ID returns a numeric identifier. Values above math.MaxInt64 are held
// as *big.Int.
func Uint64ID(n uint64) ID {
	if n <= 1<<63-1 {
		return IntID(int64(n))
	}
	return ID{kind: IDBigInt, big: new(big.Int).SetUint64(n)}
}

// BigID returns a numeric identifier held as *big.Int. n is copied; a nil n
// yields an absent identifier.
func BigID(n *big.Int) ID {
	if n == nil {
		return ID{}
	}
	return ID{kind: IDBigInt, big: new(big.Int).Set(n)}
}

// Kind returns the variant of id.
func (id ID) Kind() IDKind {
	return id.kind
}

// IsZero reports whether id is absent.
func (id ID) IsZero() bool {
	return id.kind == IDNone
}

// IsNumeric reports whether id is an integer of either width.
func (id ID) IsNumeric() bool {
	return id.kind == IDInt || id.kind == IDBigInt
}

// Str returns the text of a string identifier.
func (id ID) Str() (string, bool) {
	return id.str, id.kind == IDString
}

// Int64 returns the value of a numeric identifier if it fits in int64.
func (id ID) Int64() (int64, bool) {
	switch id.kind {
	case IDInt:
		return id.num, true
	case IDBigInt:
		if id.big.IsInt64() {
			return id.big.Int64(), true
		}
	}
	return 0, false
}

// BigInt returns a copy of a numeric identifier's value, nil for other kinds.
func (id ID) BigInt() *big.Int {
	switch id.kind {
	case IDInt:
		return big.NewInt(id.num)
	case IDBigInt:
		return new(big.Int).Set(id.big)
	default:
		return nil
	}
}

// String returns the natural string form of id: the text itself or the
// decimal digits of the number. This is the form that is signed.
func (id ID) String() string {
	switch id.kind {
	case IDString:
		return id.str
	case IDInt:
		return strconv.FormatInt(id.num, 10)
	case IDBigInt:
		return id.big.String()
	default:
		return ""
	}
}

// Equal reports whether both identifiers hold the same value. Numeric
// identifiers compare by value regardless of width; text never equals a number.
func (id ID) Equal(other ID) bool {
	switch {
	case id.kind == IDNone || other.kind == IDNone:
		return id.kind == other.kind
	case id.kind == IDString || other.kind == IDString:
		return id.kind == other.kind && id.str == other.str
	case id.kind == IDInt && other.kind == IDInt:
		return id.num == other.num
	default:
		return id.BigInt().Cmp(other.BigInt()) == 0
	}
}

// validate checks the preconditions of Sign.
func (id ID) validate() error {
	switch id.kind {
	case IDNone:
		return ErrMissingID
	case IDString:
		// A leading NUL is dropped by the integer encoding and could
		// never validate.
		if !utf8.ValidString(id.str) || strings.HasPrefix(id.str, "\x00") {
			return ErrInvalidID
		}
	case IDInt:
		if id.num < 0 {
			return ErrNegativeID
		}
	case IDBigInt:
		if id.big.Sign() < 0 {
			return ErrNegativeID
		}
	}
	return nil
}
