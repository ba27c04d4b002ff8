package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenValid(t *testing.T) {
	now := time.Now()

	t.Run("no expiry recorded is always valid", func(t *testing.T) {
		tok := &Token{Token: "abc"}
		assert.True(t, tok.Valid(now))
		assert.True(t, tok.Valid(now.Add(100*365*24*time.Hour)))
	})

	t.Run("future expiry is valid", func(t *testing.T) {
		tok := &Token{Token: "abc", ExpiresAt: now.Add(time.Hour).UnixMilli()}
		assert.True(t, tok.Valid(now))
	})

	t.Run("past expiry is invalid", func(t *testing.T) {
		tok := &Token{Token: "abc", ExpiresAt: now.Add(-time.Hour).UnixMilli()}
		assert.False(t, tok.Valid(now))
	})

	t.Run("nil and empty tokens are invalid", func(t *testing.T) {
		var tok *Token
		assert.False(t, tok.Valid(now))
		assert.False(t, (&Token{}).Valid(now))
	})
}

func TestAuthorizationHeader(t *testing.T) {
	assert.Equal(t, "Bearer abc", (&Token{Token: "abc"}).AuthorizationHeader())
	assert.Equal(t, "Token abc", (&Token{Token: "abc", TokenType: "Token"}).AuthorizationHeader())
	assert.Equal(t, "", (&Token{}).AuthorizationHeader())
}

func TestAuthedUsername(t *testing.T) {
	t.Run("explicit username wins", func(t *testing.T) {
		tok := &Token{Token: signedToken(t, jwt.MapClaims{"sub": "from-jwt"}), Username: "stored"}
		assert.Equal(t, "stored", tok.AuthedUsername())
	})

	t.Run("falls back to sub claim", func(t *testing.T) {
		tok := &Token{Token: signedToken(t, jwt.MapClaims{"sub": "from-jwt"})}
		assert.Equal(t, "from-jwt", tok.AuthedUsername())
	})

	t.Run("opaque token yields empty", func(t *testing.T) {
		tok := &Token{Token: "not-a-jwt"}
		assert.Equal(t, "", tok.AuthedUsername())
	})
}

func TestAuthedAccountType(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		tok := &Token{Token: "opaque", AccountType: AccountTypeAdmin}
		assert.Equal(t, AccountTypeAdmin, tok.AuthedAccountType())
		assert.True(t, tok.IsAdmin())
	})

	t.Run("decoded from claims", func(t *testing.T) {
		tok := &Token{Token: signedToken(t, jwt.MapClaims{"account_type": 1})}
		assert.Equal(t, AccountTypeAdmin, tok.AuthedAccountType())
	})

	t.Run("defaults to employee on decode failure", func(t *testing.T) {
		assert.Equal(t, AccountTypeEmployee, (&Token{Token: "garbage"}).AuthedAccountType())
		assert.Equal(t, AccountTypeEmployee, (&Token{}).AuthedAccountType())
	})
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, time.Hour)
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tok := &Token{
		Token:       "abc",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
		Username:    "alice",
		AccountType: AccountTypeAdmin,
	}
	require.NoError(t, store.Set(ctx, "sid-1", tok))

	got := store.Get(ctx, "sid-1")
	require.NotNil(t, got)
	assert.Equal(t, tok, got)
}

func TestStoreMissingAndCorruptReadAsLoggedOut(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	store := NewStore(rdb, time.Hour)

	assert.Nil(t, store.Get(ctx, "missing"))
	assert.Nil(t, store.Get(ctx, ""))

	require.NoError(t, mr.Set(sessionKeyPrefix+"corrupt", "{not json"))
	assert.Nil(t, store.Get(ctx, "corrupt"))

	require.NoError(t, mr.Set(sessionKeyPrefix+"empty", `{"token_type":"Bearer"}`))
	assert.Nil(t, store.Get(ctx, "empty"))
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "sid", &Token{Token: "abc"}))
	require.NoError(t, store.Clear(ctx, "sid"))
	assert.Nil(t, store.Get(ctx, "sid"))
}
