package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// ServiceClaims represents JWT custom claims for service tokens
type ServiceClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}
