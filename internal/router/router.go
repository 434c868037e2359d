package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cinehub-rest-api/internal/handler"
	"cinehub-rest-api/internal/middleware"
)

// Config holds the configuration for creating a router.
type Config struct {
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	MovieHandler        *handler.MovieHandler
	StoreHandler        *handler.StoreHandler
	SuggestionHandler   *handler.SuggestionHandler
	NotificationHandler *handler.NotificationHandler
	CommunityHandler    *handler.CommunityHandler
	GameHandler         *handler.GameHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      func(http.Handler) http.Handler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// PUBLIC routes (no auth required)
	if cfg.HealthHandler != nil {
		r.Get("/api/status", cfg.HealthHandler.Status)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Health check endpoints
		if cfg.HealthHandler != nil {
			r.Get("/health", cfg.HealthHandler.Health)
			r.Get("/ready", cfg.HealthHandler.Ready)
		}

		// Auth endpoints
		if cfg.AuthHandler != nil {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", cfg.AuthHandler.Register)
				r.Post("/login", cfg.AuthHandler.Login)
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Post("/refresh", cfg.AuthHandler.Refresh)
			})
		}

		// Public catalog endpoints
		if cfg.MovieHandler != nil {
			r.Get("/movies", cfg.MovieHandler.List)
			r.Get("/movies/categories", cfg.MovieHandler.Categories)
			r.Get("/movies/{id}", cfg.MovieHandler.Get)
			r.Get("/movies/{id}/comments", cfg.MovieHandler.ListComments)
			r.Get("/movies/{id}/reactions", cfg.MovieHandler.ListReactions)
		}
		if cfg.StoreHandler != nil {
			r.Get("/store/items", cfg.StoreHandler.ListItems)
			r.Get("/store/items/{id}", cfg.StoreHandler.GetItem)
		}
		if cfg.GameHandler != nil {
			r.Get("/games", cfg.GameHandler.List)
		}
		if cfg.CommunityHandler != nil {
			r.Get("/community/posts", cfg.CommunityHandler.ListPosts)
			r.Get("/community/posts/{id}/comments", cfg.CommunityHandler.ListPostComments)
		}

		// AUTHENTICATED routes
		r.Group(func(r chi.Router) {
			if cfg.AuthMiddleware != nil {
				r.Use(cfg.AuthMiddleware)
			}

			if cfg.UserHandler != nil {
				r.Get("/me", cfg.UserHandler.Me)
				r.Get("/me/theme", cfg.UserHandler.Theme)
				r.Post("/me/inventory/apply", cfg.UserHandler.ApplyCosmetic)
				r.Post("/me/inventory/reset", cfg.UserHandler.ResetCosmetic)
			}

			if cfg.MovieHandler != nil {
				r.Get("/me/favorites", cfg.MovieHandler.ListFavorites)
				r.Post("/movies/{id}/favorite", cfg.MovieHandler.AddFavorite)
				r.Delete("/movies/{id}/favorite", cfg.MovieHandler.RemoveFavorite)
				r.Post("/movies/{id}/comments", cfg.MovieHandler.AddComment)
				r.Post("/movies/{id}/reactions", cfg.MovieHandler.AddReaction)
				r.Post("/movies/{id}/trailer", cfg.MovieHandler.WatchTrailer)
			}

			if cfg.StoreHandler != nil {
				r.Post("/store/purchase", cfg.StoreHandler.Purchase)
				r.Get("/store/purchases", cfg.StoreHandler.ListPurchases)
			}

			if cfg.SuggestionHandler != nil {
				r.Post("/suggestions", cfg.SuggestionHandler.Submit)
				r.Get("/suggestions", cfg.SuggestionHandler.ListMine)
			}

			if cfg.NotificationHandler != nil {
				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", cfg.NotificationHandler.List)
					r.Get("/unread", cfg.NotificationHandler.UnreadCount)
					r.Get("/stream", cfg.NotificationHandler.Stream)
					r.Post("/read-all", cfg.NotificationHandler.MarkAllRead)
					r.Post("/{id}/read", cfg.NotificationHandler.MarkRead)
				})
			}

			if cfg.GameHandler != nil {
				r.Get("/games/scores", cfg.GameHandler.ListScores)
				r.Post("/games/{id}/scores", cfg.GameHandler.SubmitScore)
			}

			if cfg.CommunityHandler != nil {
				r.Post("/community/posts", cfg.CommunityHandler.CreatePost)
				r.Post("/community/posts/{id}/like", cfg.CommunityHandler.LikePost)
				r.Post("/community/posts/{id}/comments", cfg.CommunityHandler.AddPostComment)
			}

			// Admin endpoints
			if cfg.AdminHandler != nil {
				r.Route("/admin", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/stats", cfg.AdminHandler.Stats)
					r.Get("/point-events", cfg.AdminHandler.PointEvents)
					r.Get("/suggestions", cfg.AdminHandler.ListSuggestions)
					r.Post("/suggestions/{id}/approve", cfg.AdminHandler.ApproveSuggestion)
					r.Post("/suggestions/{id}/reject", cfg.AdminHandler.RejectSuggestion)
					r.Post("/store/items", cfg.AdminHandler.CreateItem)
					r.Put("/store/items/{id}", cfg.AdminHandler.UpdateItem)
					r.Delete("/store/items/{id}", cfg.AdminHandler.DeleteItem)
				})
			}
		})
	})

	return r
}
