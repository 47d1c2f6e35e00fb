package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbook/backend"
	"hotelbook/models"
)

type fakeAuth struct {
	resp      *backend.AuthResponse
	err       error
	calls     int
	lastToken string
	profile   models.ProfileUpdate
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*backend.AuthResponse, error) {
	f.calls++
	return f.resp, f.err
}

func (f *fakeAuth) RegisterCustomer(_ context.Context, _ models.Registration) (*backend.AuthResponse, error) {
	f.calls++
	return f.resp, f.err
}

func (f *fakeAuth) RegisterHotelOwner(_ context.Context, _ models.Registration) (*backend.AuthResponse, error) {
	f.calls++
	return f.resp, f.err
}

func (f *fakeAuth) UpdateProfile(_ context.Context, token string, upd models.ProfileUpdate) (string, error) {
	f.calls++
	f.lastToken = token
	f.profile = upd
	return "Profile updated successfully.", f.err
}

func (f *fakeAuth) GetUsers(context.Context, string) ([]models.User, error) {
	return nil, nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func newTestManager(auth *fakeAuth, isolate bool) *Manager {
	return NewManager(NewMemoryStore(time.Hour), auth, nil, WithPrivilegedIsolation(isolate))
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	auth := &fakeAuth{}
	m := newTestManager(auth, true)

	_, err := m.Login(context.Background(), "tab-1", " ", "secret")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = m.Login(context.Background(), "tab-1", "ann@example.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, auth.calls)
}

func TestCustomerLoginStaysInScope(t *testing.T) {
	ctx := context.Background()
	token := signedToken(t, jwt.MapClaims{"role": "Customer", "customerId": 17})
	m := newTestManager(&fakeAuth{resp: &backend.AuthResponse{Token: token, Role: "Customer", FullName: "Ann"}}, true)

	nav, err := m.Login(ctx, "tab-1", "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, &Navigation{View: ViewLanding, Scope: "tab-1"}, nav)

	assert.True(t, m.IsLoggedIn(ctx, "tab-1"))
	assert.Equal(t, models.RoleCustomer, m.GetUserRole(ctx, "tab-1"))

	sess, err := m.Current(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, "17", sess.CustomerID)
	assert.Equal(t, "ann@example.com", sess.Email)
	assert.Equal(t, "Ann", sess.FullName)
}

func TestPrivilegedLoginGetsNewScope(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(5)
	m := newTestManager(&fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "HotelOwner", HotelOwnerID: &ownerID}}, true)

	nav, err := m.Login(ctx, "tab-1", "owner@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, nav.NewScope)
	assert.NotEqual(t, "tab-1", nav.Scope)
	assert.Equal(t, ViewHotelOwnerDashboard, nav.View)

	assert.False(t, m.IsLoggedIn(ctx, "tab-1"))
	assert.Equal(t, models.RoleHotelOwner, m.GetUserRole(ctx, nav.Scope))

	sess, err := m.Current(ctx, nav.Scope)
	require.NoError(t, err)
	require.NotNil(t, sess.OwnerID)
	assert.Equal(t, int64(5), *sess.OwnerID)
}

func TestPrivilegedLoginWithoutIsolation(t *testing.T) {
	m := newTestManager(&fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "Admin"}}, false)

	nav, err := m.Login(context.Background(), "tab-1", "root@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, &Navigation{View: ViewAdminDashboard, Scope: "tab-1"}, nav)
	assert.Equal(t, models.RoleAdmin, m.GetUserRole(context.Background(), "tab-1"))
}

func TestTokenRoleTakesPrecedence(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "Admin",
	})
	m := newTestManager(&fakeAuth{resp: &backend.AuthResponse{Token: token, Role: "Customer"}}, false)

	_, err := m.Login(context.Background(), "tab-1", "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, m.GetUserRole(context.Background(), "tab-1"))
}

func TestFailedLoginMutatesNothing(t *testing.T) {
	tests := []struct {
		name string
		auth *fakeAuth
		want error
	}{
		{"backend rejects", &fakeAuth{err: &backend.APIError{StatusCode: 401, Message: "Invalid credentials"}}, nil},
		{"no token", &fakeAuth{resp: &backend.AuthResponse{Role: "Customer"}}, backend.ErrMissingToken},
		{"unknown role", &fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "Manager"}}, ErrUnknownRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := newTestManager(tt.auth, true)

			_, err := m.Login(ctx, "tab-1", "a@example.com", "secret")
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				assert.True(t, backend.IsUnauthorized(err))
			}
			assert.False(t, m.IsLoggedIn(ctx, "tab-1"))
			assert.Equal(t, models.RoleNone, m.GetUserRole(ctx, "tab-1"))
		})
	}
}

func TestLogoutClearsAndReleasesSubscribers(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(&fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "Customer"}}, true)
	_, err := m.Login(ctx, "tab-1", "a@example.com", "secret")
	require.NoError(t, err)

	ch, cancel := m.Subscribe(ctx, "tab-1")
	defer cancel()
	first := <-ch
	assert.True(t, first.LoggedIn)
	assert.Equal(t, "Customer", first.Role)

	require.NoError(t, m.Logout(ctx, "tab-1"))
	assert.False(t, m.IsLoggedIn(ctx, "tab-1"))
	assert.Equal(t, models.RoleNone, m.GetUserRole(ctx, "tab-1"))

	last, ok := <-ch
	require.True(t, ok)
	assert.False(t, last.LoggedIn)
	assert.Equal(t, "None", last.Role)

	_, ok = <-ch
	assert.False(t, ok)
	assert.Zero(t, m.hub.count("tab-1"))
}

func TestSubscriberSeesLatestValue(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "Customer", FullName: "Ann"}}
	m := newTestManager(auth, true)

	ch, cancel := m.Subscribe(ctx, "tab-1")
	defer cancel()

	_, err := m.Login(ctx, "tab-1", "a@example.com", "secret")
	require.NoError(t, err)
	_, err = m.UpdateProfile(ctx, "tab-1", models.ProfileUpdate{FullName: "Ann Lee"})
	require.NoError(t, err)

	v := <-ch
	assert.True(t, v.LoggedIn)
	assert.Equal(t, "Ann Lee", v.FullName)
}

func TestUpdateProfileKeepsEmptyFields(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "Customer", FullName: "Ann", PhoneNumber: "555"}}
	m := newTestManager(auth, true)
	_, err := m.Login(ctx, "tab-1", "a@example.com", "secret")
	require.NoError(t, err)

	msg, err := m.UpdateProfile(ctx, "tab-1", models.ProfileUpdate{PhoneNumber: "777"})
	require.NoError(t, err)
	assert.Equal(t, "Profile updated successfully.", msg)
	assert.Equal(t, "opaque", auth.lastToken)

	sess, err := m.Current(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", sess.FullName)
	assert.Equal(t, "777", sess.PhoneNumber)
}

func TestUpdateProfileFailureLeavesSession(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{resp: &backend.AuthResponse{Token: "opaque", Role: "Customer", FullName: "Ann"}}
	m := newTestManager(auth, true)
	_, err := m.Login(ctx, "tab-1", "a@example.com", "secret")
	require.NoError(t, err)

	auth.err = errors.New("boom")
	_, err = m.UpdateProfile(ctx, "tab-1", models.ProfileUpdate{FullName: "Bob"})
	require.Error(t, err)

	sess, _ := m.Current(ctx, "tab-1")
	assert.Equal(t, "Ann", sess.FullName)

	_, err = m.UpdateProfile(ctx, "tab-2", models.ProfileUpdate{FullName: "Bob"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthenticatedRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"role": "Customer", "exp": now.Add(-time.Minute).Unix()})
	m := NewManager(NewMemoryStore(time.Hour), &fakeAuth{resp: &backend.AuthResponse{Token: token}}, nil,
		WithClock(func() time.Time { return now }))

	_, err := m.Login(ctx, "tab-1", "a@example.com", "secret")
	require.NoError(t, err)

	assert.True(t, m.IsLoggedIn(ctx, "tab-1"))
	_, err = m.Authenticated(ctx, "tab-1")
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = m.Authenticated(ctx, "tab-2")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
