// Package lectio is the HTTP client for the school-scheduling service. It
// owns session handling and error mapping; everything above it works with the
// Service interface so tests can substitute a fake.
package lectio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/lectio-cli/internal/models"
	"github.com/noah-isme/lectio-cli/pkg/config"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

// EntityKind selects which kind of subject a schedule query targets.
type EntityKind string

const (
	KindUser EntityKind = "user"
	KindRoom EntityKind = "room"
)

// Entity identifies the subject of a schedule query.
type Entity struct {
	Kind EntityKind
	ID   string
}

// UserEntity builds a schedule entity for a user.
func UserEntity(id string) Entity { return Entity{Kind: KindUser, ID: id} }

// RoomEntity builds a schedule entity for a room.
func RoomEntity(id string) Entity { return Entity{Kind: KindRoom, ID: id} }

// Service is the scheduling-service surface the commands consume. Empty
// result sequences are valid results; only connectivity and authentication
// problems surface as errors.
type Service interface {
	Schedule(ctx context.Context, entity Entity, win models.Window) ([]models.Module, error)
	Me(ctx context.Context) (*models.User, error)
	UserByID(ctx context.Context, id string, role models.UserRole) (*models.User, error)
	SearchUsers(ctx context.Context, query string, role models.UserRole) ([]models.User, error)
	RoomByID(ctx context.Context, id string) (*models.Room, error)
	SearchRooms(ctx context.Context, query string) ([]models.Room, error)
}

// Client talks to the scheduling service over HTTP with a bearer-token
// session. It is not safe for concurrent use; a command invocation issues its
// calls strictly sequentially.
type Client struct {
	cfg    config.ServiceConfig
	http   *http.Client
	logger *zap.Logger

	token    string
	tokenExp time.Time
}

// NewClient constructs a Client from service configuration.
func NewClient(cfg config.ServiceConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// reauthLeeway forces a fresh login shortly before token expiry.
const reauthLeeway = 30 * time.Second

// Authenticate logs in and stores the session token. The token's expiry is
// read from its unverified claims; verification is the server's job.
func (c *Client) Authenticate(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"username": c.cfg.Username,
		"password": c.cfg.Password,
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "encode login payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/login"), bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "build login request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrServiceUnavailable.Code, apperrors.ErrServiceUnavailable.ExitCode, "schedule service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Clone(apperrors.ErrServiceUnavailable, fmt.Sprintf("authentication failed (status %d)", resp.StatusCode))
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return apperrors.Wrap(err, apperrors.ErrServiceUnavailable.Code, apperrors.ErrServiceUnavailable.ExitCode, "decode login response")
	}

	c.token = payload.Token
	c.tokenExp = tokenExpiry(payload.Token)
	c.logger.Debug("authenticated", zap.Time("token_expiry", c.tokenExp))
	return nil
}

func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	// Opaque token; assume a short session and re-login periodically.
	return time.Now().Add(10 * time.Minute)
}

func (c *Client) ensureSession(ctx context.Context) error {
	if c.token != "" && time.Until(c.tokenExp) > reauthLeeway {
		return nil
	}
	return c.Authenticate(ctx)
}

// Schedule fetches the ordered module sequence for an entity and window.
func (c *Client) Schedule(ctx context.Context, entity Entity, win models.Window) ([]models.Module, error) {
	q := url.Values{}
	q.Set("entity", string(entity.Kind))
	q.Set("id", entity.ID)
	q.Set("start", win.Start.Format(time.RFC3339))
	q.Set("end", win.End.Format(time.RFC3339))
	q.Set("truncate", fmt.Sprintf("%t", win.Truncate))

	var payload struct {
		Modules []models.Module `json:"modules"`
	}
	if err := c.get(ctx, "/schedule", q, &payload); err != nil {
		return nil, err
	}
	return payload.Modules, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByID looks up a user by identifier within a role.
func (c *Client) UserByID(ctx context.Context, id string, role models.UserRole) (*models.User, error) {
	q := url.Values{}
	q.Set("role", string(role))

	var user models.User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), q, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers finds users matching a query, optionally restricted to a role.
func (c *Client) SearchUsers(ctx context.Context, query string, role models.UserRole) ([]models.User, error) {
	q := url.Values{}
	q.Set("query", query)
	if role != "" {
		q.Set("role", string(role))
	}

	var payload struct {
		Users []models.User `json:"users"`
	}
	if err := c.get(ctx, "/users", q, &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

// RoomByID looks up a room by identifier.
func (c *Client) RoomByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := c.get(ctx, "/rooms/"+url.PathEscape(id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchRooms finds rooms matching a query; an empty query lists all rooms.
func (c *Client) SearchRooms(ctx context.Context, query string) ([]models.Room, error) {
	q := url.Values{}
	q.Set("query", query)

	var payload struct {
		Rooms []models.Room `json:"rooms"`
	}
	if err := c.get(ctx, "/rooms", q, &payload); err != nil {
		return nil, err
	}
	return payload.Rooms, nil
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/api/v1/institutions/%s%s", c.cfg.BaseURL, url.PathEscape(c.cfg.InstitutionID), path)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	u := c.endpoint(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrServiceUnavailable.Code, apperrors.ErrServiceUnavailable.ExitCode, "schedule service unreachable")
	}
	defer resp.Body.Close()

	c.logger.Debug("service call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.Clone(apperrors.ErrNotFound, "")
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperrors.Clone(apperrors.ErrServiceUnavailable, "session rejected by the schedule service")
	default:
		return apperrors.Clone(apperrors.ErrServiceUnavailable, fmt.Sprintf("schedule service error (status %d)", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrServiceUnavailable.Code, apperrors.ErrServiceUnavailable.ExitCode, "decode service response")
	}
	return nil
}
