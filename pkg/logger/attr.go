package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Algorithm records a signing algorithm under "algorithm".
func Algorithm(alg fmt.Stringer) slog.Attr {
	return slog.String("algorithm", alg.String())
}

// ErrorKind records a failure class under "error_kind".
func ErrorKind(kind fmt.Stringer) slog.Attr {
	return slog.String("error_kind", kind.String())
}

// IDKind records the identifier variant under "id_kind". The identifier
// value itself is never logged.
func IDKind(kind fmt.Stringer) slog.Attr {
	return slog.String("id_kind", kind.String())
}

// Cookie records a cookie name under "cookie".
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}
