package models

// LoginResponse is returned by the login and registration endpoints.
// The credential itself travels in the auth cookie (and the Authorization
// header), never in the body.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AssetResponse is returned after a model file upload.
type AssetResponse struct {
	// FileURL is the server-relative locator to store in a model record.
	FileURL string `json:"fileUrl"`
}
