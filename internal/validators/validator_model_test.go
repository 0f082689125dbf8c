package validators

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewModelValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("create request value and pointer", func(t *testing.T) {
		req := models.CreateModelRequest{Name: "Duck", FileURL: "/assets/3d/duck.glb"}
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("add view request value and pointer", func(t *testing.T) {
		req := models.AddViewRequest{Name: "Front", CameraPosition: &models.CameraPose{Position: &models.Vector3{Z: 5}}}
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		req := models.CreateModelRequest{Name: "Duck", FileURL: "/duck.glb"}
		assert.ErrorIs(t, v.Validate(ctx, req, "owner"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// CreateModelRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateModelRequest(t *testing.T) {
	v := NewModelValidator()

	tests := []struct {
		name    string
		req     models.CreateModelRequest
		wantErr error
	}{
		{name: "valid", req: models.CreateModelRequest{Name: "Duck", FileURL: "https://cdn.example.com/duck.glb"}},
		{name: "thumbnail is optional", req: models.CreateModelRequest{Name: "Duck", FileURL: "/duck.glb", Thumbnail: ""}},
		{name: "missing name", req: models.CreateModelRequest{FileURL: "/duck.glb"}, wantErr: ErrEmptyName},
		{name: "blank name", req: models.CreateModelRequest{Name: "   ", FileURL: "/duck.glb"}, wantErr: ErrEmptyName},
		{name: "missing file url", req: models.CreateModelRequest{Name: "Duck"}, wantErr: ErrEmptyFileURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// AddViewRequest
// ---------------------------------------------------------------------------

func TestValidate_AddViewRequest(t *testing.T) {
	v := NewModelValidator()

	tests := []struct {
		name    string
		req     models.AddViewRequest
		wantErr error
	}{
		{
			name: "position only",
			req:  models.AddViewRequest{Name: "Front", CameraPosition: &models.CameraPose{Position: &models.Vector3{Y: 1, Z: 5}}},
		},
		{
			name: "target only",
			req:  models.AddViewRequest{Name: "Origin", CameraPosition: &models.CameraPose{Target: &models.Vector3{}}},
		},
		{
			name:    "missing name",
			req:     models.AddViewRequest{CameraPosition: &models.CameraPose{Position: &models.Vector3{}}},
			wantErr: ErrEmptyName,
		},
		{
			name:    "missing pose",
			req:     models.AddViewRequest{Name: "Front"},
			wantErr: ErrEmptyCameraPosition,
		},
		{
			name:    "empty pose",
			req:     models.AddViewRequest{Name: "Front", CameraPosition: &models.CameraPose{}},
			wantErr: ErrEmptyCameraPosition,
		},
		{
			name:    "non finite coordinate",
			req:     models.AddViewRequest{Name: "Front", CameraPosition: &models.CameraPose{Position: &models.Vector3{X: math.Inf(1)}}},
			wantErr: ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := NewModelValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Email: "ada@example.com", Password: "secret"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Password: "secret"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Email: "not-an-email", Password: "secret"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Email: "ada@example.com"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Email: "ada@example.com", Password: "x"}, FieldName), ErrEmptyName)
	assert.NoError(t, v.Validate(ctx, models.User{Password: "secret"}, FieldPassword))
}

// ---------------------------------------------------------------------------
// ValidateModelFileName
// ---------------------------------------------------------------------------

func TestValidateModelFileName(t *testing.T) {
	for _, name := range []string{"duck.glb", "DUCK.GLB", "scene.gltf", "teapot.Obj", "dir/sub/model.glb"} {
		assert.NoError(t, ValidateModelFileName(name), name)
	}
	for _, name := range []string{"duck.fbx", "duck", "", "archive.glb.zip", ".gltfx"} {
		assert.ErrorIs(t, ValidateModelFileName(name), ErrUnsupportedFormat, name)
	}
}
