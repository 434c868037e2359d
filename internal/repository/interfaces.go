package repository

import (
	"context"
	"time"

	"cinehub-rest-api/internal/model"
)

// UserRepository defines user data access methods. All point-balance and
// inventory mutation of a user record passes through here.
type UserRepository interface {
	// Create inserts a new user and sets its ID.
	// Returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, u *model.User) error

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// PasswordHash returns the stored credential hash for an email.
	PasswordHash(ctx context.Context, email string) (string, error)

	// UpdateInventory replaces a user's inventory record.
	UpdateInventory(ctx context.Context, id int64, inv model.Inventory) error

	// UpdateAvatar sets a user's avatar image.
	UpdateAvatar(ctx context.Context, id int64, avatar string) error

	// AddPoints unconditionally credits points to a user.
	AddPoints(ctx context.Context, id int64, amount int64) error

	// SetAdmin grants or revokes admin rights by email.
	SetAdmin(ctx context.Context, email string, isAdmin bool) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

// StoreRepository defines store data access: admin-managed custom items,
// the append-only purchase log, and the atomic purchase transition.
type StoreRepository interface {
	// CreateCustomItem inserts an admin-created item, allocating an id at
	// or above model.CustomItemIDStart.
	CreateCustomItem(ctx context.Context, item *model.StoreItem) error

	// UpdateCustomItem replaces a custom item's fields.
	UpdateCustomItem(ctx context.Context, item model.StoreItem) error

	// DeleteCustomItem removes a custom item. Dangling inventory references
	// are not cleaned up, matching the catalog's integrity policy.
	DeleteCustomItem(ctx context.Context, id int64) error

	// GetCustomItem retrieves a custom item by id.
	GetCustomItem(ctx context.Context, id int64) (*model.StoreItem, error)

	// ListCustomItems returns all custom items.
	ListCustomItems(ctx context.Context) ([]model.StoreItem, error)

	// RecordPurchase applies a purchase in one transaction: deducts the
	// cost (guarded so the balance never goes negative), replaces the
	// buyer's inventory, appends the purchase record and the buyer's
	// notification. Returns ErrInsufficientPoints if the guard fails.
	RecordPurchase(ctx context.Context, userID int64, item model.StoreItem, updatedInv model.Inventory, n model.Notification) (*model.Purchase, error)

	// ListPurchases returns a user's purchases, newest first.
	ListPurchases(ctx context.Context, userID int64) ([]model.Purchase, error)

	// CountPurchases returns the total number of purchases.
	CountPurchases(ctx context.Context) (int64, error)
}

// SuggestionRepository defines movie-suggestion data access. Approve and
// Reject enforce the pending-only state machine at the data layer, so a
// double review can never re-apply side effects.
type SuggestionRepository interface {
	// Create inserts a pending suggestion and sets its ID.
	Create(ctx context.Context, s *model.MovieSuggestion) error

	// GetByID retrieves a suggestion by id.
	GetByID(ctx context.Context, id int64) (*model.MovieSuggestion, error)

	// List returns suggestions filtered by status; empty status means all.
	List(ctx context.Context, status model.SuggestionStatus) ([]model.MovieSuggestion, error)

	// ListByUser returns a user's suggestions, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.MovieSuggestion, error)

	// Approve atomically transitions a pending suggestion to approved,
	// inserts the community movie, credits the submitter's reward and
	// appends the notification. Returns ErrNotPending if the suggestion
	// was already reviewed.
	Approve(ctx context.Context, id, adminID int64, movie model.Movie, reward int64, n model.Notification) (*model.MovieSuggestion, error)

	// Reject atomically transitions a pending suggestion to rejected and
	// appends the notification. Returns ErrNotPending if already reviewed.
	Reject(ctx context.Context, id, adminID int64, n model.Notification) (*model.MovieSuggestion, error)
}

// MovieRepository defines access to community movies (approved suggestions).
type MovieRepository interface {
	// List returns all community movies.
	List(ctx context.Context) ([]model.Movie, error)

	// GetByID retrieves a community movie by id.
	GetByID(ctx context.Context, id int64) (*model.Movie, error)

	// Count returns the number of community movies.
	Count(ctx context.Context) (int64, error)
}

// NotificationRepository defines the per-user notification log.
type NotificationRepository interface {
	// Insert appends a notification and sets its ID.
	Insert(ctx context.Context, n *model.Notification) error

	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error)

	// MarkRead flips a notification to read. Idempotent.
	MarkRead(ctx context.Context, id, userID int64) error

	// MarkAllRead flips all of a user's notifications to read.
	MarkAllRead(ctx context.Context, userID int64) error

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context, userID int64) (int64, error)

	// DeleteReadBefore removes read notifications created before the
	// cutoff. Used by the retention scheduler.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// EngagementRepository defines the per-movie and community interaction
// records: favorites, comments, reactions, trailer watches, game scores
// and community posts.
type EngagementRepository interface {
	// AddFavorite marks a movie as a favorite. The bool reports whether
	// this is the pair's first-ever add; re-adding after a removal
	// returns false.
	AddFavorite(ctx context.Context, userID, movieID int64) (bool, error)
	RemoveFavorite(ctx context.Context, userID, movieID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]int64, error)

	AddComment(ctx context.Context, c *model.Comment) error
	ListComments(ctx context.Context, movieID int64) ([]model.Comment, error)

	AddReaction(ctx context.Context, r *model.Reaction) error
	ListReactions(ctx context.Context, movieID int64) ([]model.Reaction, error)

	// RecordTrailerWatch marks a trailer watched and reports whether this
	// was the first watch of that movie by the user.
	RecordTrailerWatch(ctx context.Context, userID, movieID int64) (bool, error)

	AddGameScore(ctx context.Context, s *model.GameScore) error
	ListGameScores(ctx context.Context, userID int64) ([]model.GameScore, error)

	CreatePost(ctx context.Context, p *model.CommunityPost) error
	ListPosts(ctx context.Context, limit int) ([]model.CommunityPost, error)
	LikePost(ctx context.Context, postID int64) error
	AddPostComment(ctx context.Context, c *model.CommunityComment) error
	ListPostComments(ctx context.Context, postID int64) ([]model.CommunityComment, error)
}

// AuditRepository defines the optional point-movement audit log. It is
// written best-effort after the owning transaction commits.
type AuditRepository interface {
	// RecordPointEvent appends a point movement to the audit log.
	RecordPointEvent(ctx context.Context, ev model.PointEvent) error

	// RecentEvents returns the most recent point movements.
	RecentEvents(ctx context.Context, limit int) ([]model.PointEvent, error)
}
