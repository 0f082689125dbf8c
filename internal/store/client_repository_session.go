// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
)

const (
	upsertSession = `
		INSERT INTO session (id, user_id, email, name, token, expires_at, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email,
			name = excluded.name,
			token = excluded.token,
			expires_at = excluded.expires_at,
			saved_at = excluded.saved_at;`

	selectSession = `
		SELECT user_id, email, name, token, expires_at, saved_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)

// localSessionRepository stores a single credential row in SQLite.
type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] over db.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{DB: db, logger: logger}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	_, err := r.ExecContext(ctx, upsertSession,
		session.Identity.UserID,
		session.Identity.Email,
		session.Identity.Name,
		session.Token,
		session.ExpiresAt.UTC(),
		session.SavedAt.UTC(),
	)
	if err != nil {
		r.logger.Err(err).Str("func", "localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession
	err := r.QueryRowContext(ctx, selectSession).Scan(
		&session.Identity.UserID,
		&session.Identity.Email,
		&session.Identity.Name,
		&session.Token,
		&session.ExpiresAt,
		&session.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "localSessionRepository.GetSession").Msg("failed to read session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "localSessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
