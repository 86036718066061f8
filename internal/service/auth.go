package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
)

// AuthService configures Clerk, which verifies admin API tokens.
type AuthService struct{}

func NewAuthService(secretKey string) *AuthService {
	clerk.SetKey(secretKey)
	return &AuthService{}
}
