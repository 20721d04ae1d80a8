package security

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeviceToken(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString([]byte("test-signing-secret-32-bytes-long"))

	token, err := CreateDeviceToken(&DeviceIdentity{
		SupervisorID: "sup-1",
		Name:         "Ravi",
		SiteID:       "site-1",
		DeviceID:     "device-1",
	}, secret, 3600)
	require.NoError(t, err)

	secretBytes, _ := base64.StdEncoding.DecodeString(secret)
	parsed, err := jwt.ParseWithClaims(token, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secretBytes, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(*IdentityClaims)
	assert.Equal(t, "sup-1", claims.SupervisorID)
	assert.Equal(t, "Ravi", claims.UniqueName)
	assert.Equal(t, "site-1", claims.SiteID)
	assert.Equal(t, "device-1", claims.SID)
	assert.Equal(t, "ambe-fieldops", claims.Issuer)
}

func TestCreateDeviceTokenBadSecret(t *testing.T) {
	_, err := CreateDeviceToken(&DeviceIdentity{SupervisorID: "sup-1"}, "not base64 !!!", 60)
	assert.Error(t, err)
}
