package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"arca/internal/models/request_models"
	"arca/internal/models/response_models"
	"arca/pkg/logger"
	mem "arca/pkg/memcache"
	"arca/pkg/utils"
)

// sessionNamespace derives stable user ids from emails, so signing in again
// with the same address reaches the same itinerary slot.
var sessionNamespace = uuid.MustParse("6f1c9b52-3f0e-4d6a-9a55-2b7e0c1d8a43")

type SessionServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
}

// SessionService is the mock sign-in: no passwords, every account is free
// tier. It only hands out the read-only session the itinerary API consumes.
type SessionService struct {
	tokens          *utils.TokenManager
	revoked         mem.RevokedTokenStore
	defaultLanguage string
	log             logger.Logger
}

func NewSessionService(tokens *utils.TokenManager, revoked mem.RevokedTokenStore, defaultLanguage string, log logger.Logger) *SessionService {
	return &SessionService{
		tokens:          tokens,
		revoked:         revoked,
		defaultLanguage: defaultLanguage,
		log:             log.With("component", "session_service"),
	}
}

func (s *SessionService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", utils.ErrInvalidInput)
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	language := request.Language
	if language == "" {
		language = s.defaultLanguage
	}

	userID := uuid.NewSHA1(sessionNamespace, []byte(email)).String()
	token, claims, err := s.tokens.CreateToken(userID, utils.Claims{
		Email:     email,
		Name:      name,
		IsPremium: false,
		Language:  language,
	})
	if err != nil {
		s.log.Error("Failed to issue session token", "email", email, "error", err)
		return nil, err
	}

	s.log.Info("Session started", "user_id", userID, "token_id", claims.ID)

	return &response_models.SessionResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
		User: response_models.SessionUser{
			ID:        userID,
			Email:     email,
			Name:      name,
			IsPremium: claims.IsPremium,
			Language:  language,
		},
	}, nil
}

// Logout revokes the token until its own expiry.
func (s *SessionService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return utils.ErrUnauthorized
	}
	until := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	s.revoked.Revoke(claims.ID, until)
	s.log.Info("Session ended", "user_id", claims.Subject, "token_id", claims.ID)
	return nil
}
