package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/QuaresmaHarygens/Talkam/session"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestExpired(t *testing.T) {
	live := signedToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	assert.False(t, session.Expired(live))

	stale := signedToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()})
	assert.True(t, session.Expired(stale))

	// no exp claim or garbage input counts as expired
	assert.True(t, session.Expired(signedToken(t, jwt.MapClaims{"sub": "u1"})))
	assert.True(t, session.Expired("not-a-jwt"))
	assert.True(t, session.Expired(""))
}

func TestSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "+231770000000", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, "+231770000000", session.Subject(token))
	assert.Empty(t, session.Subject("not-a-jwt"))
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := session.NewFileTokenStore(dir)
	assert.NoError(t, err)
	assert.Empty(t, store.Token())

	assert.NoError(t, store.SetToken("tok-1"))
	assert.Equal(t, "tok-1", store.Token())

	// a fresh store over the same directory sees the persisted token
	reopened, err := session.NewFileTokenStore(dir)
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", reopened.Token())

	assert.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	cleared, err := session.NewFileTokenStore(dir)
	assert.NoError(t, err)
	assert.Empty(t, cleared.Token())
}

func TestFileTokenStore_ClearWhenAbsent(t *testing.T) {
	store, err := session.NewFileTokenStore(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, store.Clear())
}

func TestDeviceHash_StableAcrossCalls(t *testing.T) {
	dir := t.TempDir()

	first, err := session.DeviceHash(dir)
	assert.NoError(t, err)
	assert.Len(t, first, 64) // 32 bytes hex encoded

	second, err := session.DeviceHash(dir)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeviceHash_DistinctPerSalt(t *testing.T) {
	a, err := session.DeviceHash(t.TempDir())
	assert.NoError(t, err)
	b, err := session.DeviceHash(t.TempDir())
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
