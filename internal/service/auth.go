package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"cinehub-rest-api/internal/cache"
	"cinehub-rest-api/internal/config"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
)

const (
	// maxLoginAttempts failed logins within lockoutWindow lock the account.
	maxLoginAttempts = 3
	lockoutWindow    = 5 * time.Minute

	loginAttemptsKeyPrefix = "login:attempts:"
)

// AuthService handles registration, login and logout. Failed logins are
// counted per email in the cache; the counter keys a fixed lockout window.
type AuthService struct {
	users    repository.UserRepository
	sessions *SessionService
	notifier *NotificationService
	cache    cache.Cache
	cfg      config.EconomyConfig
}

func NewAuthService(
	users repository.UserRepository,
	sessions *SessionService,
	notifier *NotificationService,
	c cache.Cache,
	cfg config.EconomyConfig,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		notifier: notifier,
		cache:    c,
		cfg:      cfg,
	}
}

// Register creates an account with the welcome point grant and an empty
// inventory, then opens a session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("name, email and password are required")
	}

	now := time.Now().UTC()
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashPassword(password),
		Points:       s.cfg.RegistrationGrant,
		JoinDate:     now.Format("2006-01-02"),
		Inventory:    model.NewInventory(),
		CreatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.sessions.Generate(ctx, user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("[AuthService] registered user_id=%d email=%s with %d welcome points",
		user.ID, user.Email, s.cfg.RegistrationGrant)
	return user, token, nil
}

// Login verifies credentials and opens a session. Three failures for the
// same email within five minutes lock further attempts out until the
// window expires. A successful login appends a welcome-back notification.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	attemptsKey := loginAttemptsKeyPrefix + email

	if s.isLockedOut(ctx, attemptsKey) {
		return nil, "", ErrAccountLocked
	}

	hash, err := s.users.PasswordHash(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.recordFailure(ctx, attemptsKey)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if subtle.ConstantTimeCompare([]byte(hash), []byte(hashPassword(password))) != 1 {
		s.recordFailure(ctx, attemptsKey)
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Generate(ctx, user)
	if err != nil {
		return nil, "", err
	}

	_ = s.cache.Delete(ctx, attemptsKey)

	if err := s.notifier.Notify(ctx, model.Notification{
		UserID:  user.ID,
		Type:    model.NotificationLogin,
		Title:   "Inicio de sesión exitoso",
		Message: fmt.Sprintf("Bienvenido de vuelta, %s!", user.Name),
	}); err != nil {
		log.Printf("[AuthService] login notification failed: %v", err)
	}

	log.Printf("[AuthService] user_id=%d logged in", user.ID)
	return user, token, nil
}

// Logout revokes the session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// GetUser retrieves a user profile by id.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) isLockedOut(ctx context.Context, key string) bool {
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	attempts, err := strconv.ParseInt(string(val), 10, 64)
	if err != nil {
		return false
	}
	return attempts >= maxLoginAttempts
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	attempts, err := s.cache.Increment(ctx, key, lockoutWindow)
	if err != nil {
		log.Printf("[AuthService] failed to record login attempt: %v", err)
		return
	}
	if attempts >= maxLoginAttempts {
		log.Printf("[AuthService] lockout engaged for %s", key)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword derives the stored credential hash. SHA-256 over the raw
// password, hex encoded.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
