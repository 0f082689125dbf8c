package models

import "io"

// Asset is a model file stored in object storage.
type Asset struct {
	// Key is the object key, always prefixed with the owner identifier.
	Key string

	// ContentType is the MIME type reported to clients.
	ContentType string

	// Size is the length of Body in bytes, or -1 when unknown.
	Size int64

	// Body streams the file content. The receiver must close it.
	Body io.ReadCloser
}

// AssetUpload is a model file received from a client before it is stored.
type AssetUpload struct {
	// FileName is the client-side file name; only its extension is kept.
	FileName string

	// ContentType is the MIME type sent by the client, if any.
	ContentType string

	// Size is the declared length of Body in bytes.
	Size int64

	// Body streams the file content.
	Body io.ReadCloser
}
