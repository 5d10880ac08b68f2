package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-saas/models"
	"hotel-saas/store"
)

// memoryRevoker stands in for Redis.
type memoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func (r *memoryRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.revoked == nil {
		r.revoked = map[string]time.Duration{}
	}
	r.revoked[id] = ttl
	return nil
}

func (r *memoryRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[id]
	return ok, nil
}

func newAuth(t *testing.T) (*AuthService, *store.MemoryStore, *memoryRevoker) {
	t.Helper()
	s := store.NewMemoryStore()
	rev := &memoryRevoker{}
	return NewAuthService(s, NewTokenService("test-secret", time.Hour), rev, zap.NewNop()), s, rev
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth, s, _ := newAuth(t)

	hotel, owner, err := auth.Register(ctx, RegisterInput{HotelName: "Hotel Montana", Email: " Owner@Montana.HT ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.PlanTrial, hotel.Plan)
	assert.Equal(t, models.HotelTrial, hotel.Status)
	assert.Equal(t, "HTG", hotel.Currency)
	assert.Equal(t, "owner@montana.ht", owner.Email)
	assert.Equal(t, models.RoleOwner, owner.Role)
	require.NotNil(t, owner.HotelID)
	assert.Equal(t, hotel.ID, *owner.HotelID)
	assert.NotEqual(t, "secret1", owner.Password)

	users, err := s.ListUsers(ctx, hotel.ID)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	res, err := auth.Login(ctx, "OWNER@montana.ht", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, hotel.ID, res.Hotel.ID)

	claims, err := auth.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, claims.UserID)
	assert.Equal(t, models.RoleOwner, claims.Role)
	assert.True(t, claims.CanAccessHotel(hotel.ID))
	assert.False(t, claims.CanAccessHotel("another-hotel"))
}

func TestAuthService_RegisterRejects(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newAuth(t)

	_, _, err := auth.Register(ctx, RegisterInput{HotelName: "A", Email: "a@a.ht", Password: "123"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Fields[0].Field)

	_, _, err = auth.Register(ctx, RegisterInput{HotelName: "A", Email: "not-an-email", Password: "secret1"})
	assert.ErrorAs(t, err, &verr)

	_, _, err = auth.Register(ctx, RegisterInput{HotelName: "A", Email: "a@a.ht", Password: "secret1"})
	require.NoError(t, err)
	_, _, err = auth.Register(ctx, RegisterInput{HotelName: "B", Email: "A@a.ht", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	auth, s, _ := newAuth(t)
	hotel, owner, err := auth.Register(ctx, RegisterInput{HotelName: "Montana", Email: "o@m.ht", Password: "secret1"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, "nobody@m.ht", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "o@m.ht", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	inactive := false
	_, err = s.UpdateUser(ctx, hotel.ID, owner.ID, models.UserPatch{Active: &inactive})
	require.NoError(t, err)
	_, err = auth.Login(ctx, "o@m.ht", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LogoutRevokes(t *testing.T) {
	ctx := context.Background()
	auth, _, rev := newAuth(t)
	_, _, err := auth.Register(ctx, RegisterInput{HotelName: "Montana", Email: "o@m.ht", Password: "secret1"})
	require.NoError(t, err)
	res, err := auth.Login(ctx, "o@m.ht", "secret1")
	require.NoError(t, err)

	claims, err := auth.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx, claims))
	assert.Contains(t, rev.revoked, claims.ID)

	_, err = auth.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_EnsureSuperAdmin(t *testing.T) {
	ctx := context.Background()
	auth, s, _ := newAuth(t)

	require.NoError(t, auth.EnsureSuperAdmin(ctx, "", ""))
	require.NoError(t, auth.EnsureSuperAdmin(ctx, "Root@Platform.ht", "rootpass"))
	require.NoError(t, auth.EnsureSuperAdmin(ctx, "root@platform.ht", "other"), "second call is a no-op")

	admin, err := s.GetUserByEmail(ctx, "root@platform.ht")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
	assert.Nil(t, admin.HotelID)

	res, err := auth.Login(ctx, "root@platform.ht", "rootpass")
	require.NoError(t, err)
	assert.Nil(t, res.Hotel)

	claims, err := auth.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, claims.CanAccessHotel("any-hotel"))
}

func TestTokenService_RejectsTamperingAndExpiry(t *testing.T) {
	hotelID := "h1"
	user := &models.User{Email: "o@m.ht", Role: models.RoleOwner, HotelID: &hotelID}
	user.ID = "u1"

	tokens := NewTokenService("secret-a", time.Hour)
	raw, issued, err := tokens.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, "u1", issued.Subject)

	_, err = NewTokenService("secret-b", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	later := NewTokenService("secret-a", time.Hour)
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// An unsigned token must never be accepted.
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, issued).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Parse(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
