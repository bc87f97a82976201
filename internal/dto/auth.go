package dto

import "time"

// LoginRequest carries the credentials submitted by the login form.
// Password deliberately has no binding rule: an empty password must
// reach the exact-match comparison and fail there, not at validation.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// SignupRequest carries the profile submitted by the signup form.
// The credit score is assigned by an external concern and accepted as
// given.
type SignupRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CreditScore int    `json:"creditScore" binding:"gte=0"`
}

// LoginResponse represents the response for a successful login or signup.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
