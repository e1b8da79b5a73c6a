package errors

import "errors"

var (
	ErrInvalidStatusCode = errors.New("invalid status code")
	ErrInvalidRedirect   = errors.New("invalid redirect url")
)
