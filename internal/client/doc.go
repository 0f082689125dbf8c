// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the locally saved credential, falls back to the terminal login
// flow and runs the model list and viewer until the user quits.
package client
