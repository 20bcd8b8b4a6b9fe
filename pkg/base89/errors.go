package base89

import "errors"

var (
	ErrInvalidCharacter = errors.New("base89: invalid character")
	ErrNegative         = errors.New("base89: negative value")
	ErrInvalidUTF8      = errors.New("base89: decoded bytes are not valid utf-8")
)
