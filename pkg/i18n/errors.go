package i18n

import "errors"

var (
	ErrFailedToParseYAML     = errors.New("failed to parse YAML catalogue")
	ErrFailedToReadFile      = errors.New("failed to read catalogue file")
	ErrFailedToReadDirectory = errors.New("failed to read catalogue directory")
	ErrLanguageNotSupported  = errors.New("language not supported")
)
