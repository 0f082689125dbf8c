// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-model-viewer server handlers and the client services.
//
// All Msg* constants are human-readable strings written into the "error" or
// "message" field of JSON response bodies. The client matches on them to
// tell apart failures that share an HTTP status, so the wording must stay
// in sync on both sides.
package app

const (
	// MsgMissingRequiredFields is returned when a create request lacks the
	// model name or file locator.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgMissingEmailOrPassword is returned when a login or registration
	// request has an empty email or password.
	MsgMissingEmailOrPassword = "Missing email or password"

	// MsgInvalidEmail is returned when a registration email cannot be parsed.
	MsgInvalidEmail = "Invalid email address"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailAlreadyExists is returned when registration is attempted with
	// an email that is already taken.
	MsgEmailAlreadyExists = "Email already registered"

	// MsgUnauthorized is returned by the auth gate when the credential is
	// missing, forged or expired.
	MsgUnauthorized = "Unauthorized"

	// MsgModelNotFound is returned when no record matches both the record
	// identifier and the caller.
	MsgModelNotFound = "Model not found"

	// MsgModelNotFoundOrUnauthorized is returned when a view is saved on a
	// record the caller does not own or that does not exist.
	MsgModelNotFoundOrUnauthorized = "Model not found or unauthorized"

	// MsgInvalidModelID is returned when a view is saved against a
	// syntactically invalid record identifier.
	MsgInvalidModelID = "Invalid Model ID"

	// MsgViewPayloadRequired is returned when a saved view lacks a name or a
	// camera pose.
	MsgViewPayloadRequired = "View name and camera position are required"

	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnsupportedFormat is returned when an uploaded file is not a .glb,
	// .gltf or .obj file.
	MsgUnsupportedFormat = "Unsupported file format"

	// MsgAssetTooLarge is returned when an upload exceeds the size limit.
	MsgAssetTooLarge = "File is too large"

	// MsgAssetNotFound is returned when a requested asset does not exist or
	// belongs to another user.
	MsgAssetNotFound = "Asset not found"

	// MsgAssetStorageDisabled is returned by the asset routes when no object
	// storage is configured.
	MsgAssetStorageDisabled = "Asset storage is not configured"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without a version string.
	MsgVersionIsNotSpecified = "version is not specified"
)

// Operation-specific texts for unexpected failures. The cause is logged,
// never echoed.
const (
	MsgLoginFailed        = "An error occurred during login"
	MsgRegistrationFailed = "An error occurred during registration"
	MsgListModelsFailed   = "An error occurred while fetching models"
	MsgGetModelFailed     = "An error occurred while fetching the model"
	MsgCreateModelFailed  = "An error occurred while creating the model"
	MsgUpdateModelFailed  = "An error occurred while updating the model"
	MsgDeleteModelFailed  = "An error occurred while deleting the model"
	MsgSaveViewFailed     = "An error occurred while saving the view"
	MsgUploadAssetFailed  = "An error occurred while uploading the file"
)

// Success messages.
const (
	MsgLoginSuccessful        = "Login successful"
	MsgRegistrationSuccessful = "Registration successful"
	MsgLogoutSuccessful       = "Logout successful"
	MsgModelUpdated           = "Model updated successfully"
	MsgModelDeleted           = "Model deleted successfully"
)
