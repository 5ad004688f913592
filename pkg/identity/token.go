package identity

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// NewJWTAuth builds the HS256 verifier used by the HTTP layer
func NewJWTAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// NewDevToken mints a short-lived HS256 bearer token carrying the subject and
// email claims this system reads. Intended for development and the admin CLI;
// production deployments take tokens from the identity provider.
func NewDevToken(secret, issuer, userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iss":   issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
