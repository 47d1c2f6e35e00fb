package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

// roleClaimURI is the role claim name used by ASP.NET identity tokens.
const roleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

var ErrMalformedToken = errors.New("malformed token")

// TokenClaims holds the fields the gateway reads from a backend-issued token.
type TokenClaims struct {
	Role       string
	CustomerID string
	ExpiresAt  time.Time
}

// DecodeTokenClaims reads the claims of a backend token without verifying its
// signature. The backend owns the signing key and re-validates every call.
func DecodeTokenClaims(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	out := &TokenClaims{
		Role:       claimString(claims, "role", roleClaimURI),
		CustomerID: claimString(claims, "customerId", "id", "sub"),
	}
	if exp, ok := claims["exp"].(float64); ok && exp > 0 {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}

// claimString returns the first non-empty claim among keys, rendering numbers
// without a fractional part and taking the first element of arrays.
func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v != 0 {
				return strconv.FormatFloat(v, 'f', -1, 64)
			}
		case []interface{}:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}
