package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/cache"
	"cinehub-rest-api/internal/config"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
	"cinehub-rest-api/internal/service"
)

// testEnv wires the full service graph against a throwaway SQLite database.
type testEnv struct {
	users       *repository.SQLiteUserRepository
	store       *repository.SQLiteStoreRepository
	movies      *repository.SQLiteMovieRepository
	suggestions *repository.SQLiteSuggestionRepository
	engagement  *repository.SQLiteEngagementRepository

	cache    cache.Cache
	audit    *auditLog
	sessions *service.SessionService
	notifier *service.NotificationService
	economy  *service.EconomyService
	auth     *service.AuthService
	suggest  *service.SuggestionService
	engage   *service.EngagementService
}

func testEconomyConfig() config.EconomyConfig {
	return config.EconomyConfig{
		RegistrationGrant: 10,
		SuggestionReward:  10,
		CommentReward:     1,
		FavoriteReward:    1,
		TrailerReward:     2,
		PostReward:        5,
		CommentCooldown:   10 * time.Second,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c := cache.NewMemoryCache()
	t.Cleanup(func() { c.Close() })

	env := &testEnv{
		users:       repository.NewSQLiteUserRepository(db),
		store:       repository.NewSQLiteStoreRepository(db),
		movies:      repository.NewSQLiteMovieRepository(db),
		suggestions: repository.NewSQLiteSuggestionRepository(db),
		engagement:  repository.NewSQLiteEngagementRepository(db),
		cache:       c,
		audit:       &auditLog{},
	}

	notificationRepo := repository.NewSQLiteNotificationRepository(db)
	cfg := testEconomyConfig()

	env.sessions = service.NewSessionService(c)
	env.notifier = service.NewNotificationService(notificationRepo)
	env.economy = service.NewEconomyService(env.users, env.store, env.notifier, env.audit, cfg)
	env.auth = service.NewAuthService(env.users, env.sessions, env.notifier, c, cfg)
	env.suggest = service.NewSuggestionService(env.suggestions, env.notifier, env.economy)
	env.engage = service.NewEngagementService(env.engagement, env.movies, env.economy, c)

	return env
}

// newUser registers an account and returns it with the welcome grant applied.
func (env *testEnv) newUser(t *testing.T, name, email string) *model.User {
	t.Helper()

	user, _, err := env.auth.Register(context.Background(), name, email, "secret")
	require.NoError(t, err)
	return user
}

// fund raises a user's balance by the given amount.
func (env *testEnv) fund(t *testing.T, userID, amount int64) {
	t.Helper()
	require.NoError(t, env.economy.EarnPoints(context.Background(), userID, amount, "test"))
}

// auditLog is an in-memory AuditRepository recording every point movement.
type auditLog struct {
	mu     sync.Mutex
	events []model.PointEvent
}

var _ repository.AuditRepository = (*auditLog)(nil)

func (a *auditLog) RecordPointEvent(ctx context.Context, ev model.PointEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
	return nil
}

func (a *auditLog) RecentEvents(ctx context.Context, limit int) ([]model.PointEvent, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.PointEvent, len(a.events))
	copy(out, a.events)
	return out, nil
}

// balance reads a user's current point balance.
func (env *testEnv) balance(t *testing.T, userID int64) int64 {
	t.Helper()

	user, err := env.users.GetByID(context.Background(), userID)
	require.NoError(t, err)
	return user.Points
}
