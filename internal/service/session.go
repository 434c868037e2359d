package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cinehub-rest-api/internal/cache"
	"cinehub-rest-api/internal/model"
)

const (
	// TokenPrefix is the prefix for all session tokens
	TokenPrefix = "chb_"

	// SessionTTL is the default session lifetime
	SessionTTL = 24 * time.Hour

	// sessionKeyPrefix is the cache key prefix for sessions
	sessionKeyPrefix = "session:"
)

// SessionService handles session token generation and validation. It works
// against the Cache interface, so sessions live in memory in development
// and in Redis in production.
type SessionService struct {
	cache cache.Cache
}

// NewSessionService creates a new session service.
func NewSessionService(c cache.Cache) *SessionService {
	return &SessionService{cache: c}
}

// Generate creates a new session token and stores the session.
func (s *SessionService) Generate(ctx context.Context, user *model.User) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	token := TokenPrefix + hex.EncodeToString(tokenBytes)

	now := time.Now()
	session := model.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	jsonData, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := s.cache.Set(ctx, sessionKeyPrefix+token, jsonData, SessionTTL); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("[SessionService] Session created for user_id=%d, expires=%v", user.ID, session.ExpiresAt)
	return token, nil
}

// Validate checks if a token is valid and returns its session.
func (s *SessionService) Validate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	if len(token) < len(TokenPrefix) || token[:len(TokenPrefix)] != TokenPrefix {
		return nil, fmt.Errorf("invalid token format")
	}

	jsonData, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err == cache.ErrCacheMiss {
		return nil, fmt.Errorf("session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(jsonData, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.cache.Delete(ctx, sessionKeyPrefix+token)
		return nil, fmt.Errorf("session expired")
	}

	return &session, nil
}

// Revoke deletes a session.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

// Refresh extends the TTL of an existing session.
func (s *SessionService) Refresh(ctx context.Context, token string) error {
	jsonData, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return fmt.Errorf("session not found: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(jsonData, &session); err != nil {
		return err
	}

	session.ExpiresAt = time.Now().Add(SessionTTL)

	newJSON, _ := json.Marshal(session)
	return s.cache.Set(ctx, sessionKeyPrefix+token, newJSON, SessionTTL)
}
