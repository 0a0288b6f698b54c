package reference

import "errors"

// ErrInvalidReference is returned when a book name or module name does not
// resolve in the alias tables, or a reference string is malformed.
var ErrInvalidReference = errors.New("reference: invalid reference")
