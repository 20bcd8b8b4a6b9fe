package cookie

import "errors"

var (
	ErrNilSigner      = errors.New("cookie.nil_signer")
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrUnsafeValue    = errors.New("cookie.unsafe_value")
)
