package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsiku_backend/internals/constants"
)

func TestTokenRoundTrip(t *testing.T) {
	raw, err := GenerateAuthToken("test-secret",
		"8c2f2f1e-0000-0000-0000-000000000001", constants.RoleProfessional,
		"9876543210", "8c2f2f1e-0000-0000-0000-0000000000aa", "Dr. Mehta")
	require.NoError(t, err)

	claims, err := ParseAuthToken("test-secret", raw)
	require.NoError(t, err)

	assert.Equal(t, "8c2f2f1e-0000-0000-0000-000000000001", claims.ID)
	assert.Equal(t, constants.RoleProfessional, claims.Role)
	assert.Equal(t, "9876543210", claims.Number)
	assert.Equal(t, "8c2f2f1e-0000-0000-0000-0000000000aa", claims.OrganizationID)
	assert.Equal(t, "Dr. Mehta", claims.Name)
}

func TestTokenExpirySetTo24h(t *testing.T) {
	raw, err := GenerateAuthToken("test-secret", "id", "Teacher", "n", "org", "name")
	require.NoError(t, err)

	claims, err := ParseAuthToken("test-secret", raw)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenTTL, ttl)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	raw, err := GenerateAuthToken("right-secret", "id", "Parent", "n", "org", "name")
	require.NoError(t, err)

	_, err = ParseAuthToken("wrong-secret", raw)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := ParseAuthToken("secret", "not-a-token")
	assert.Error(t, err)

	_, err = ParseAuthToken("secret", "  ")
	assert.Error(t, err)
}

func TestIdentityProbeOrder(t *testing.T) {
	order := IdentityProbeOrder()
	assert.Equal(t, []string{
		constants.RoleOrganizationAdmin,
		constants.RoleNGOAdmin,
		constants.RoleSchoolAdmin,
		constants.RoleProfessional,
		constants.RoleTeacher,
		constants.RoleParent,
	}, order)

	// mutation of the copy must not leak back
	order[0] = "tampered"
	assert.Equal(t, constants.RoleOrganizationAdmin, IdentityProbeOrder()[0])
}
