package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrEmptyFileURL        = errors.New("file url is required")
	ErrEmptyCameraPosition = errors.New("camera position is required")
	ErrInvalidCoordinate   = errors.New("camera coordinates must be finite numbers")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("email is malformed")
	ErrEmptyPassword       = errors.New("password is required")
	ErrUnsupportedFormat   = errors.New("unsupported model file format")
)
