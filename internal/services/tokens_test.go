package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/models"
)

func newTokenService() TokenService {
	return TokenService{
		Secret: []byte("test-secret"),
		Issuer: "lecture-scheduler",
		TTL:    time.Hour,
	}
}

func testUser() models.User {
	return models.User{
		ID:             uuid.NewString(),
		Username:       "mmeier@example.org",
		FirstName:      "Martina",
		LastName:       "Meier",
		PrivilegeLevel: 2,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTokenService()
	user := testUser()

	token, err := svc.CreateToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.FirstName, claims.FirstName)
	assert.Equal(t, user.LastName, claims.LastName)
	assert.Equal(t, user.PrivilegeLevel, claims.PrivilegeLevel)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc := newTokenService()
	token, err := svc.CreateToken(testUser())
	require.NoError(t, err)

	other := newTokenService()
	other.Secret = []byte("different")
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := newTokenService()
	svc.TTL = -time.Minute
	token, err := svc.CreateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newTokenService()
	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestClaimsMatchesDetectsStaleIdentity(t *testing.T) {
	svc := newTokenService()
	user := testUser()
	token, err := svc.CreateToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Matches(user))

	// A profile edit after token issuance invalidates the session.
	edited := user
	edited.LastName = "Mueller"
	assert.False(t, claims.Matches(edited))

	renamed := user
	renamed.Username = "m.meier@example.org"
	assert.False(t, claims.Matches(renamed))
}

func TestPasswordHashing(t *testing.T) {
	svc := newTokenService()

	hash, err := svc.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, svc.VerifyPassword("s3cret!", hash))
	assert.False(t, svc.VerifyPassword("wrong", hash))

	// Fresh salt per hash.
	hash2, err := svc.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPasswordLegacyBcrypt(t *testing.T) {
	svc := newTokenService()
	legacy, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	assert.True(t, svc.VerifyPassword("s3cret!", string(legacy)))
	assert.False(t, svc.VerifyPassword("wrong", string(legacy)))
}
