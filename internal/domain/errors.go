package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrMissingDocumentType   = errors.New("document type is required")
	ErrMissingOutputFormat   = errors.New("output format is required")
	ErrBuiltinImmutable      = errors.New("built-in document types cannot be modified")
	ErrDuplicateDocumentType = errors.New("document type with this id or label already exists")
	ErrEmptyCompletion       = errors.New("model returned no text")
	ErrEngineeringFailed     = errors.New("prompt engineering failed")
	ErrPlaceholderMissing    = errors.New("prompt does not contain the document placeholder")
	ErrRunNotComplete        = errors.New("run has no engineered prompt")
)
