package auth_test

import (
	"testing"
	"time"

	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	person := &domain.Person{PersonID: 7, Username: "anna", Role: domain.RoleApplicant}

	token, err := tokens.Generate(person)
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "anna", claims.Username)
	assert.Equal(t, "applicant", claims.Role)
}

func TestTokenExpired(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", -time.Minute)
	person := &domain.Person{PersonID: 7, Username: "anna", Role: domain.RoleApplicant}

	token, err := tokens.Generate(person)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)
	person := &domain.Person{PersonID: 7, Username: "anna", Role: domain.RoleApplicant}

	token, err := issuer.Generate(person)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	for _, garbage := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := tokens.Verify(garbage)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	}
}
