// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the go-model-viewer API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the API server.
// Implementations are responsible for serialisation, credential header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer credential attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the credential currently stored in the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates an account. On success the issued credential is
	// stored via SetToken.
	Register(ctx context.Context, user models.User) (models.UserSummary, error)

	// Login exchanges email and password for a credential, stored via
	// SetToken on success.
	Login(ctx context.Context, user models.User) (models.UserSummary, error)

	// Logout asks the server to expire the credential cookie and forgets the
	// stored token regardless of the outcome.
	Logout(ctx context.Context) error

	// Me returns the identity the server resolves from the stored credential.
	Me(ctx context.Context) (models.UserSummary, error)

	// ListModels returns the caller's model summaries, newest first.
	ListModels(ctx context.Context) ([]models.ModelSummary, error)

	// GetModel returns the full record including saved views.
	GetModel(ctx context.Context, modelID string) (models.Model, error)

	// CreateModel registers a new model record.
	CreateModel(ctx context.Context, req models.CreateModelRequest) (models.Model, error)

	// UpdateModel applies a partial update.
	UpdateModel(ctx context.Context, modelID string, patch models.ModelPatch) error

	// DeleteModel removes the record and its saved views.
	DeleteModel(ctx context.Context, modelID string) error

	// AddView appends a named camera snapshot and returns the stored view.
	AddView(ctx context.Context, modelID string, req models.AddViewRequest) (models.SavedView, error)

	// UploadAsset sends a local model file and returns its server locator.
	UploadAsset(ctx context.Context, path string) (string, error)

	// GetAppVersion returns the server version string.
	GetAppVersion(ctx context.Context) (string, error)
}
