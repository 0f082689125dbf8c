// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when looking for the
// credential. Callers can match against them with [errors.Is].
var (
	// ErrNoCredential is returned by the auth middleware when the request
	// carries neither the auth cookie nor an "Authorization" header.
	ErrNoCredential = errors.New("no credential in cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the auth cookie is present but holds an
	// empty value.
	ErrEmptyToken = errors.New("empty token in auth cookie")
)
