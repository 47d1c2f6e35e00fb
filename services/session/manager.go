package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotelbook/backend"
	"hotelbook/models"
	"hotelbook/utils"
)

// Landing views after authentication.
const (
	ViewLanding             = "landing"
	ViewHotelOwnerDashboard = "hotel-owner-dashboard"
	ViewAdminDashboard      = "admin-dashboard"
)

// Navigation tells the caller where to go after login or registration.
// NewScope is set when the session was stored under a freshly minted scope.
type Navigation struct {
	View     string `json:"view"`
	Scope    string `json:"scope"`
	NewScope bool   `json:"newScope"`
}

// Manager is the single writer of session state for every scope.
type Manager struct {
	store             Store
	auth              backend.AuthAPI
	hub               *hub
	logger            *zap.Logger
	isolatePrivileged bool
	now               func() time.Time
}

type Option func(*Manager)

// WithPrivilegedIsolation stores HotelOwner and Admin logins in a new scope.
func WithPrivilegedIsolation(enabled bool) Option {
	return func(m *Manager) { m.isolatePrivileged = enabled }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(store Store, auth backend.AuthAPI, logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		store:  store,
		auth:   auth,
		hub:    newHub(),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewScope mints an opaque scope id.
func NewScope() string {
	return uuid.NewString()
}

func (m *Manager) Login(ctx context.Context, scope, email, password string) (*Navigation, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.logger.Info("login rejected", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return m.establish(ctx, scope, resp, models.Registration{Email: email})
}

func (m *Manager) RegisterCustomer(ctx context.Context, scope string, reg models.Registration) (*Navigation, error) {
	resp, err := m.auth.RegisterCustomer(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return m.establish(ctx, scope, resp, reg)
}

func (m *Manager) RegisterHotelOwner(ctx context.Context, scope string, reg models.Registration) (*Navigation, error) {
	resp, err := m.auth.RegisterHotelOwner(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return m.establish(ctx, scope, resp, reg)
}

// establish validates an auth response and stores it. Nothing is written
// unless the response is complete.
func (m *Manager) establish(ctx context.Context, scope string, resp *backend.AuthResponse, form models.Registration) (*Navigation, error) {
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	sess, err := m.sessionFromResponse(resp, form)
	if err != nil {
		return nil, err
	}

	nav := &Navigation{View: landingView(sess.Role), Scope: scope}
	if (sess.Role.Privileged() && m.isolatePrivileged) || scope == "" {
		nav.Scope = NewScope()
		nav.NewScope = true
	}
	sess.Scope = nav.Scope

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	m.hub.publish(sess.Scope, sess.View(sess.Scope))

	m.logger.Info("session established",
		zap.String("scope", sess.Scope),
		zap.String("role", sess.Role.String()),
		zap.Bool("newScope", nav.NewScope))
	return nav, nil
}

func (m *Manager) sessionFromResponse(resp *backend.AuthResponse, form models.Registration) (*models.Session, error) {
	roleName := resp.Role
	var claims *utils.TokenClaims
	if c, err := utils.DecodeTokenClaims(resp.Token); err == nil {
		claims = c
		if c.Role != "" {
			roleName = c.Role
		}
	} else {
		m.logger.Debug("token claims unreadable", zap.Error(err))
	}

	role, ok := models.ParseRole(roleName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, roleName)
	}

	now := m.now()
	sess := &models.Session{
		Role:        role,
		Token:       resp.Token,
		FullName:    firstNonEmpty(resp.FullName, form.FullName),
		Email:       firstNonEmpty(resp.Email, form.Email),
		PhoneNumber: firstNonEmpty(resp.PhoneNumber, form.PhoneNumber),
		OwnerID:     resp.HotelOwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if claims != nil {
		sess.CustomerID = claims.CustomerID
		sess.ExpiresAt = claims.ExpiresAt
	}
	if sess.CustomerID == "" && resp.CustomerID != nil {
		sess.CustomerID = fmt.Sprint(*resp.CustomerID)
	}
	return sess, nil
}

// UpdateProfile forwards the change and mirrors the non-empty fields locally.
func (m *Manager) UpdateProfile(ctx context.Context, scope string, upd models.ProfileUpdate) (string, error) {
	sess, err := m.store.Get(ctx, scope)
	if err != nil {
		return "", err
	}
	if !sess.LoggedIn() {
		return "", ErrNotLoggedIn
	}
	msg, err := m.auth.UpdateProfile(ctx, sess.Token, upd)
	if err != nil {
		return "", fmt.Errorf("profile update failed: %w", err)
	}
	if upd.FullName != "" {
		sess.FullName = upd.FullName
	}
	if upd.PhoneNumber != "" {
		sess.PhoneNumber = upd.PhoneNumber
	}
	sess.UpdatedAt = m.now()
	if err := m.store.Save(ctx, sess); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}
	m.hub.publish(scope, sess.View(scope))
	return msg, nil
}

// Logout clears the scope, publishes the anonymous state and releases subscribers.
func (m *Manager) Logout(ctx context.Context, scope string) error {
	if err := m.store.Delete(ctx, scope); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	var none *models.Session
	m.hub.closeScope(scope, none.View(scope))
	m.logger.Info("session closed", zap.String("scope", scope))
	return nil
}

// Current returns the scope's session, or nil when nobody is logged in.
func (m *Manager) Current(ctx context.Context, scope string) (*models.Session, error) {
	if scope == "" {
		return nil, nil
	}
	return m.store.Get(ctx, scope)
}

func (m *Manager) IsLoggedIn(ctx context.Context, scope string) bool {
	sess, err := m.Current(ctx, scope)
	if err != nil {
		m.logger.Warn("session lookup failed", zap.String("scope", scope), zap.Error(err))
		return false
	}
	return sess.LoggedIn()
}

func (m *Manager) GetUserRole(ctx context.Context, scope string) models.Role {
	sess, err := m.Current(ctx, scope)
	if err != nil || !sess.LoggedIn() {
		return models.RoleNone
	}
	return sess.Role
}

// Authenticated returns the scope's session if it is logged in and its token
// has not expired.
func (m *Manager) Authenticated(ctx context.Context, scope string) (*models.Session, error) {
	sess, err := m.Current(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if sess.Expired(m.now()) {
		return nil, ErrSessionExpired
	}
	return sess, nil
}

// Subscribe streams the scope's session view, starting with the current one.
// The channel is closed by cancel or by Logout.
func (m *Manager) Subscribe(ctx context.Context, scope string) (<-chan models.SessionView, func()) {
	return m.hub.subscribe(scope, func() models.SessionView {
		sess, err := m.Current(ctx, scope)
		if err != nil {
			m.logger.Warn("session lookup failed", zap.String("scope", scope), zap.Error(err))
		}
		return sess.View(scope)
	})
}

func landingView(role models.Role) string {
	switch role {
	case models.RoleHotelOwner:
		return ViewHotelOwnerDashboard
	case models.RoleAdmin:
		return ViewAdminDashboard
	default:
		return ViewLanding
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
