package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource provides the credentials the transport attaches to requests.
// SetAccess persists a rotated access token; ClearAll wipes the access
// token, refresh token and identity snapshot together, never partially.
type TokenSource interface {
	Access() string
	Refresh() string
	SetAccess(token string) error
	ClearAll() error
}

// leeway before the exp claim at which a token is treated as expired, so a
// token that dies mid-flight gets refreshed up front.
const expiryLeeway = 30 * time.Second

// tokenExpired inspects the JWT exp claim without verifying the signature;
// verification is the server's job. Unparsable tokens are passed through
// and left for the server to reject.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.Add(expiryLeeway).After(exp.Time)
}
