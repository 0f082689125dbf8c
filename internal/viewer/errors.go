package viewer

import "errors"

var (
	ErrNoModelOpened     = errors.New("no model is opened")
	ErrViewNameRequired  = errors.New("view name is required")
	ErrReadOnlyModel     = errors.New("model is read-only")
	ErrModelNotPersisted = errors.New("model is not saved on the server")
	ErrViewNotFound      = errors.New("saved view not found")
	ErrUnsupportedFormat = errors.New("unsupported model file format")
	ErrNotPlaceholder    = errors.New("local files can only be attached to a new model")
)
