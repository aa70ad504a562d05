package tags

import "errors"

// ErrInvalidOptions is returned when the options passed to New or Register
// cannot build the underlying validators.
var ErrInvalidOptions = errors.New("tags: invalid options")
