package response_models

import "arca/pkg/utils"

type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
	Language  string `json:"language"`
}

type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"` // RFC3339
	User      SessionUser `json:"user"`
}

func NewSessionUser(claims *utils.Claims) SessionUser {
	return SessionUser{
		ID:        claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		IsPremium: claims.IsPremium,
		Language:  claims.Language,
	}
}
