package validator

import "errors"

// Configuration errors returned by validator constructors.
// Validate itself never returns an error; these abort setup.
var (
	// ErrInvalidPattern is returned when an exclusion pattern does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")

	// ErrInvalidLimit is returned when an age limit is zero or negative.
	ErrInvalidLimit = errors.New("limit must be greater than zero")

	// ErrMissingOption is returned when a required option is not set.
	ErrMissingOption = errors.New("required option is missing")

	// ErrInvalidOption is returned when an option is outside of its allowed range.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrInvalidDate is returned when a configured date bound cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
