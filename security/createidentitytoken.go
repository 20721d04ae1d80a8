package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type DeviceIdentity struct {
	SupervisorID string
	Name         string
	SiteID       string
	DeviceID     string
}

// IdentityClaims includes Identity and standard JWT claims

type Identity struct {
	SupervisorID string `json:"nameid"`
	UniqueName   string `json:"unique_name"`
	SiteID       string `json:"siteid"`
	SID          string `json:"sid"`
}
type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateDeviceToken mints the bearer token a supervisor device presents to
// the central API.
func CreateDeviceToken(identity *DeviceIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			SupervisorID: identity.SupervisorID,
			UniqueName:   identity.Name,
			SiteID:       identity.SiteID,
			SID:          identity.DeviceID,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ambe-fieldops",
			Audience:  []string{"fieldops.ambeservice.in"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretBytes))
}
