// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/adapter"
	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidModelID:
			return ErrInvalidModelID
		case app.MsgUnsupportedFormat:
			return validators.ErrUnsupportedFormat
		case app.MsgAssetTooLarge:
			return ErrAssetTooLarge
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgAssetNotFound {
			return store.ErrAssetNotFound
		}
		return store.ErrModelNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrEmailAlreadyExists

	case errors.Is(err, adapter.ErrRequestTooLarge):
		return ErrAssetTooLarge

	case errors.Is(err, adapter.ErrServiceUnavailable):
		if msg == app.MsgAssetStorageDisabled {
			return ErrAssetStorageDisabled
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
