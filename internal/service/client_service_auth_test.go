package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/adapter"
	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/mock"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc builds a clientAuthService over gomock doubles.
func newTestClientAuthSvc(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockLocalSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockLocalSessionRepository(ctrl)

	svc := NewClientAuthService(mockSessions, mockAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return fixedNow }

	return svc, mockAdapter, mockSessions
}

func signedTestToken(t *testing.T, userID string, duration time.Duration) (string, time.Time) {
	t.Helper()
	token, err := utils.GenerateJWTToken("model-viewer", models.Identity{UserID: userID}, duration, "secret")
	require.NoError(t, err)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	return token.SignedString, exp.Time
}

var testSummary = models.UserSummary{ID: testOwnerID, Name: "ada", Email: "ada@example.com"}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestClientAuthService_Login_PersistsSession(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()
	raw, exp := signedTestToken(t, testOwnerID, time.Hour)
	user := models.User{Email: "ada@example.com", Password: "pw"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, user).Return(testSummary, nil),
		mockAdapter.EXPECT().Token().Return(raw),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, session models.LocalSession) error {
				assert.Equal(t, models.Identity{UserID: testOwnerID, Email: "ada@example.com", Name: "ada"}, session.Identity)
				assert.Equal(t, raw, session.Token)
				assert.True(t, exp.Equal(session.ExpiresAt))
				assert.True(t, fixedNow.Equal(session.SavedAt))
				return nil
			}),
	)

	got, err := svc.Login(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	serverErr := fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.UserSummary{}, serverErr)

	_, err := svc.Login(context.Background(), models.User{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientAuthService_Login_NoCredential(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(testSummary, nil)
	mockAdapter.EXPECT().Token().Return("")

	_, err := svc.Login(context.Background(), models.User{Email: "ada@example.com", Password: "pw"})
	assert.ErrorIs(t, err, adapter.ErrNoCredentialInResponse)
}

func TestClientAuthService_Register_Duplicate(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	serverErr := fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailAlreadyExists)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.UserSummary{}, serverErr)

	_, err := svc.Register(context.Background(), models.User{Email: "ada@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestClientAuthService_Register_SaveFails(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	raw, _ := signedTestToken(t, testOwnerID, time.Hour)
	dbErr := errors.New("disk full")

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(testSummary, nil)
	mockAdapter.EXPECT().Token().Return(raw)
	mockSessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.Register(context.Background(), models.User{Email: "ada@example.com", Password: "pw"})
	assert.ErrorIs(t, err, dbErr)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore_NothingSaved(t *testing.T) {
	svc, _, mockSessions := newTestClientAuthSvc(t)

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoSavedSession)
}

func TestClientAuthService_Restore_Expired(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{
		Token:     "stale",
		ExpiresAt: fixedNow.Add(-time.Minute),
	}, nil)
	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoSavedSession)
}

func TestClientAuthService_Restore_Valid(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{
			Token:     "still-good",
			ExpiresAt: fixedNow.Add(time.Hour),
		}, nil),
		mockAdapter.EXPECT().SetToken("still-good"),
		mockAdapter.EXPECT().Me(gomock.Any()).Return(testSummary, nil),
	)

	got, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testSummary, got)
}

func TestClientAuthService_Restore_RejectedByServer(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{
			Token:     "forged",
			ExpiresAt: fixedNow.Add(time.Hour),
		}, nil),
		mockAdapter.EXPECT().SetToken("forged"),
		mockAdapter.EXPECT().Me(gomock.Any()).Return(models.UserSummary{}, fmt.Errorf("%w: Unauthorized", adapter.ErrUnauthorized)),
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().DeleteSession(gomock.Any()).Return(nil),
	)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoSavedSession)
}

func TestClientAuthService_Restore_ServerDown(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	netErr := errors.New("connection refused")

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{Token: "t", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
	mockAdapter.EXPECT().SetToken("t")
	mockAdapter.EXPECT().Me(gomock.Any()).Return(models.UserSummary{}, netErr)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, netErr)
	assert.NotErrorIs(t, err, ErrNoSavedSession)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_ForgetsEvenWhenServerFails(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Logout(gomock.Any()).Return(errors.New("offline"))
	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}
