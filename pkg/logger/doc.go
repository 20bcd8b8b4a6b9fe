// Package logger builds *slog.Logger values for the token packages and
// provides attribute helpers that keep key names consistent.
//
// New returns a logger writing JSON (default) or text records. Options set
// the level, output and static attributes, and WithContextValue registers a
// context key whose value is attached to every record logged with a
// *Context method, for example a request id when validating a cookie.
//
// Library types such as token.Signer and cookie.Manager take an optional
// logger and fall back to Discard, so nothing is written unless the caller
// opts in.
//
// # Usage
//
//	import "github.com/dmitrymomot/lostoken/pkg/logger"
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("auth")),
//	)
//
//	signer, err := token.New(key, salt, token.WithLogger(log))
//
// Helpers such as Error return an empty attribute for nil input, so
//
//	log.Debug("validated", logger.Error(err))
//
// needs no nil check.
package logger
