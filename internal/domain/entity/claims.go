package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated caller's identity through the request.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
