package html2haml

import "errors"

// Sentinel errors for library operations.
var (
	ErrOptionsNotSupported = errors.New("converter options are not supported")
	ErrInvalidInjectMode   = errors.New("invalid inject mode")
)
