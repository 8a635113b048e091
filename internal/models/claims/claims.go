package claims

import "github.com/golang-jwt/jwt/v4"

// Auth carries the identity email inside the provider's access token.
type Auth struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}
