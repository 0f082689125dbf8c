package validators

import (
	"context"
	"math"
	"net/mail"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-model-viewer/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a model record or saved view.
	FieldName = "name"

	// FieldFileURL targets the asset locator of a model record.
	FieldFileURL = "file_url"

	// FieldCameraPosition targets the camera pose of a saved view request.
	FieldCameraPosition = "camera_position"

	// FieldEmail targets the login identifier of a user.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a user.
	FieldPassword = "password"
)

// SupportedModelExtensions lists the file extensions accepted for model
// files, lower-cased and with the leading dot.
var SupportedModelExtensions = []string{".glb", ".gltf", ".obj"}

// ModelValidator checks the payloads of the model, saved view and
// authentication endpoints.
type ModelValidator struct {
}

func NewModelValidator() Validator {
	return &ModelValidator{}
}

func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateModelRequest:
		return v.validateCreateModelRequest(ctx, value, fields...)
	case *models.CreateModelRequest:
		return v.validateCreateModelRequest(ctx, *value, fields...)

	case models.AddViewRequest:
		return v.validateAddViewRequest(ctx, value, fields...)
	case *models.AddViewRequest:
		return v.validateAddViewRequest(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ModelValidator) validateCreateModelRequest(_ context.Context, request models.CreateModelRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldFileURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyName
			}
		case FieldFileURL:
			if strings.TrimSpace(request.FileURL) == "" {
				return ErrEmptyFileURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ModelValidator) validateAddViewRequest(_ context.Context, request models.AddViewRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCameraPosition}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyName
			}
		case FieldCameraPosition:
			if request.CameraPosition.IsEmpty() {
				return ErrEmptyCameraPosition
			}
			if !isFinite(request.CameraPosition.Position) || !isFinite(request.CameraPosition.Target) {
				return ErrInvalidCoordinate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ModelValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(user.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateModelFileName reports ErrUnsupportedFormat unless name ends in one
// of SupportedModelExtensions (case-insensitive).
func ValidateModelFileName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedModelExtensions {
		if ext == supported {
			return nil
		}
	}
	return ErrUnsupportedFormat
}

func isFinite(v *models.Vector3) bool {
	if v == nil {
		return true
	}
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
