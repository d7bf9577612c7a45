package usecase

import (
	authdomain "dayscount-backend/internal/auth/domain"
	authdto "dayscount-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic interface
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	GoogleSignIn(idToken string) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)

	RegisterFCMToken(userID, token, deviceInfo string) error
	UnregisterFCMToken(token string) error
}
