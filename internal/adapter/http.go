package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/go-resty/resty/v2"
)

// authCookieName must match the cookie the server sets on login.
const authCookieName = "auth-token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// NormalizeBaseURL turns a host:port or URL into an absolute base URL
// without a trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed).
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.UserSummary, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.UserSummary, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.UserSummary, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	token, err := credentialFrom(resp)
	if err != nil {
		return models.UserSummary{}, err
	}

	h.SetToken(token)
	return result.User, nil
}

// credentialFrom reads the token from the Authorization header, falling back
// to the auth cookie.
func credentialFrom(resp *resty.Response) (string, error) {
	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		return token, nil
	}
	for _, c := range resp.Cookies() {
		if c.Name == authCookieName && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", ErrNoCredentialInResponse
}

// Logout implements [ServerAdapter]. POST /api/auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// Me implements [ServerAdapter]. GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserSummary, error) {
	var me models.UserSummary

	resp, err := h.authedRequest(ctx).SetResult(&me).Get("/api/auth/me")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}
	return me, nil
}

// ListModels implements [ServerAdapter]. GET /api/models.
func (h *httpServerAdapter) ListModels(ctx context.Context) ([]models.ModelSummary, error) {
	var summaries []models.ModelSummary

	resp, err := h.authedRequest(ctx).SetResult(&summaries).Get("/api/models")
	if err != nil {
		return nil, fmt.Errorf("list models request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.ModelSummary{}
	}
	return summaries, nil
}

// GetModel implements [ServerAdapter]. GET /api/models/{id}.
func (h *httpServerAdapter) GetModel(ctx context.Context, modelID string) (models.Model, error) {
	var model models.Model

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", modelID).
		SetResult(&model).
		Get("/api/models/{id}")
	if err != nil {
		return models.Model{}, fmt.Errorf("get model request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Model{}, err
	}
	return model, nil
}

// CreateModel implements [ServerAdapter]. POST /api/models.
func (h *httpServerAdapter) CreateModel(ctx context.Context, req models.CreateModelRequest) (models.Model, error) {
	var model models.Model

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&model).
		Post("/api/models")
	if err != nil {
		return models.Model{}, fmt.Errorf("create model request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Model{}, err
	}
	return model, nil
}

// UpdateModel implements [ServerAdapter]. PUT /api/models/{id}.
func (h *httpServerAdapter) UpdateModel(ctx context.Context, modelID string, patch models.ModelPatch) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", modelID).
		SetBody(patch).
		Put("/api/models/{id}")
	if err != nil {
		return fmt.Errorf("update model request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteModel implements [ServerAdapter]. DELETE /api/models/{id}.
func (h *httpServerAdapter) DeleteModel(ctx context.Context, modelID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", modelID).
		Delete("/api/models/{id}")
	if err != nil {
		return fmt.Errorf("delete model request: %w", err)
	}
	return mapHTTPError(resp)
}

// AddView implements [ServerAdapter]. POST /api/models/{id}/views.
func (h *httpServerAdapter) AddView(ctx context.Context, modelID string, req models.AddViewRequest) (models.SavedView, error) {
	var view models.SavedView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", modelID).
		SetBody(req).
		SetResult(&view).
		Post("/api/models/{id}/views")
	if err != nil {
		return models.SavedView{}, fmt.Errorf("add view request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SavedView{}, err
	}
	return view, nil
}

// UploadAsset implements [ServerAdapter]. It sends path as the multipart
// field "file" to POST /api/assets.
func (h *httpServerAdapter) UploadAsset(ctx context.Context, path string) (string, error) {
	var result models.AssetResponse

	resp, err := h.authedRequest(ctx).
		SetFile("file", path).
		SetResult(&result).
		Post("/api/assets")
	if err != nil {
		return "", fmt.Errorf("upload asset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return result.FileURL, nil
}

// GetAppVersion implements [ServerAdapter]. GET /api/version/.
func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
