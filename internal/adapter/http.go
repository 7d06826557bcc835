package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	// fetchAttempts bounds the typed fetch path: one initial try plus retries
	// on transient failures, three attempts in total.
	fetchAttempts     = 3
	fetchRetryWait    = 250 * time.Millisecond
	fetchRetryMaxWait = 2 * time.Second
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST [ServerAdapter] for the typed chat
// API. adapterCfg.HTTPAddress may be a bare "host:port" or a full base URL;
// the underlying client gets the configured request timeout and a retry
// policy that only ever replays GET fetches.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(fetchAttempts - 1).
		SetRetryWaitTime(fetchRetryWait).
		SetRetryMaxWaitTime(fetchRetryMaxWait).
		AddRetryCondition(retryTransientFetch)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

// normalizeBaseURL turns the configured server address into a base URL resty
// can join paths onto. Scheme-less "host:port" values default to plain http.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("no server address configured")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse server address: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("server address %q lacks a host", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// retryTransientFetch restricts retries to idempotent fetches: GET requests
// that failed in transit or were answered with a 5xx status. Version-mismatch
// statuses are excluded so that the legacy fallback starts without delay.
func retryTransientFetch(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return err != nil
	}
	if resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}
	if isVersionMismatch(resp.StatusCode()) {
		return false
	}

	return resp.StatusCode() >= http.StatusInternalServerError
}

// SetToken replaces the bearer token attached to authenticated requests.
// Surrounding whitespace is trimmed. The sync job and an interactive login
// may race here, hence the lock.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token reports the bearer token currently in use, empty before first login.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/login. On success the bearer token is extracted from the
// Authorization response header, parsed into its session claims and stored via
// SetToken. Returns an error if the request fails, the server returns a
// non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Login: login, Password: password}).
		Post("/api/v1/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	raw, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	token, err := utils.ParseSessionToken(raw)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse session token: %w", err)
	}

	h.SetToken(token.SignedString)
	return token, nil
}

// GetSubscriptions implements [ServerAdapter]. It GETs the subscription delta
// from GET /api/v1/subscriptions.get, bounded by the updatedSince query
// parameter when a watermark is given. Requires a valid bearer token. A server
// without the typed endpoint yields [ErrVersionUnsupported] (wrapped).
func (h *httpServerAdapter) GetSubscriptions(ctx context.Context, since *time.Time) (models.SubscriptionsResponse, error) {
	var out models.SubscriptionsResponse

	req := h.authedRequest(ctx).SetResult(&out)
	if since != nil {
		req.SetQueryParam("updatedSince", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get("/api/v1/subscriptions.get")
	if err != nil {
		return models.SubscriptionsResponse{}, fmt.Errorf("get subscriptions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubscriptionsResponse{}, err
	}

	return out, nil
}

// GetRooms implements [ServerAdapter]. It GETs the room delta from
// GET /api/v1/rooms.get, bounded by the updatedSince query parameter when a
// watermark is given. Requires a valid bearer token. A server without the
// typed endpoint yields [ErrVersionUnsupported] (wrapped).
func (h *httpServerAdapter) GetRooms(ctx context.Context, since *time.Time) (models.RoomsResponse, error) {
	var out models.RoomsResponse

	req := h.authedRequest(ctx).SetResult(&out)
	if since != nil {
		req.SetQueryParam("updatedSince", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get("/api/v1/rooms.get")
	if err != nil {
		return models.RoomsResponse{}, fmt.Errorf("get rooms request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RoomsResponse{}, err
	}

	return out, nil
}

// MarkRead implements [ServerAdapter]. It POSTs the room identifier to
// POST /api/v1/subscriptions.read. Requires a valid bearer token. Returns
// [ErrVersionUnsupported] (wrapped) if the server predates the typed endpoint.
func (h *httpServerAdapter) MarkRead(ctx context.Context, roomID string) error {
	var out models.ReadResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ReadRequest{RoomID: roomID}).
		SetResult(&out).
		Post("/api/v1/subscriptions.read")
	if err != nil {
		return fmt.Errorf("mark read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("mark read rejected by server (rid=%s)", roomID)
	}

	return nil
}

// authedRequest prepares a request with ctx attached and, once a session is
// active, the bearer Authorization header set.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	token := h.Token()
	if token == "" {
		return req
	}
	return req.SetHeader("Authorization", "Bearer "+token)
}
