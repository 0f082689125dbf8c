package models

// CreateModelRequest is the body of POST /api/models.
type CreateModelRequest struct {
	// Name is the display name. Required.
	Name string `json:"name"`

	// FileURL locates the 3D asset. Required.
	FileURL string `json:"fileUrl"`

	// Thumbnail optionally locates a preview image.
	Thumbnail string `json:"thumbnail,omitempty"`
}

// AddViewRequest is the body of POST /api/models/{id}/views.
type AddViewRequest struct {
	// Name of the view. Required; duplicates are allowed.
	Name string `json:"name"`

	// CameraPosition is the camera pose to store. Required.
	CameraPosition *CameraPose `json:"cameraPosition"`
}
