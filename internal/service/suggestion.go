package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cinehub-rest-api/internal/metrics"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
)

// approvedMovieRating is the rating assigned to every community movie when
// its suggestion is approved.
const approvedMovieRating = 4.0

// SuggestionService runs the suggestion workflow: submission by users and
// one-shot review by admins. Approval mints the community movie and pays the
// submitter's reward in the same transaction as the status flip.
type SuggestionService struct {
	suggestions repository.SuggestionRepository
	notifier    *NotificationService
	economy     *EconomyService
}

func NewSuggestionService(
	suggestions repository.SuggestionRepository,
	notifier *NotificationService,
	economy *EconomyService,
) *SuggestionService {
	return &SuggestionService{
		suggestions: suggestions,
		notifier:    notifier,
		economy:     economy,
	}
}

// Submit records a pending suggestion and acknowledges it in the
// submitter's notification log.
func (s *SuggestionService) Submit(ctx context.Context, userID int64, userName string, draft model.SuggestionDraft) (*model.MovieSuggestion, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	suggestion := &model.MovieSuggestion{
		UserID:      userID,
		UserName:    userName,
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Image:       draft.Image,
		Year:        draft.Year,
		Duration:    draft.Duration,
		Genres:      draft.Genres,
		Cast:        draft.Cast,
		Director:    draft.Director,
		Trailer:     draft.Trailer,
		Status:      model.SuggestionPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.suggestions.Create(ctx, suggestion); err != nil {
		return nil, err
	}

	data, _ := json.Marshal(map[string]interface{}{"suggestionId": suggestion.ID})
	if err := s.notifier.Notify(ctx, model.Notification{
		UserID:  userID,
		Type:    model.NotificationSuggestionReceived,
		Title:   "Sugerencia recibida",
		Message: fmt.Sprintf("Tu sugerencia \"%s\" está pendiente de revisión", suggestion.Title),
		Data:    data,
	}); err != nil {
		log.Printf("[SuggestionService] receipt notification failed: %v", err)
	}

	log.Printf("[SuggestionService] user_id=%d submitted suggestion_id=%d (%q)",
		userID, suggestion.ID, suggestion.Title)
	return suggestion, nil
}

// Approve transitions a pending suggestion to approved, publishing the movie
// to the community catalog and rewarding the submitter. Reviewing a
// suggestion twice returns ErrAlreadyReviewed without re-applying either
// side effect.
func (s *SuggestionService) Approve(ctx context.Context, id, adminID int64) (*model.MovieSuggestion, error) {
	suggestion, err := s.suggestions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}

	movie := model.Movie{
		Title:       suggestion.Title,
		Description: suggestion.Description,
		Image:       suggestion.Image,
		Year:        suggestion.Year,
		Duration:    suggestion.Duration,
		Rating:      approvedMovieRating,
		Genres:      suggestion.Genres,
		Cast:        suggestion.Cast,
		Director:    suggestion.Director,
		Trailer:     suggestion.Trailer,
	}

	reward := s.economy.Config().SuggestionReward
	data, _ := json.Marshal(map[string]interface{}{"suggestionId": id, "reward": reward})
	notification := model.Notification{
		UserID:  suggestion.UserID,
		Type:    model.NotificationSuggestionApproved,
		Title:   "¡Sugerencia aprobada!",
		Message: fmt.Sprintf("Tu sugerencia \"%s\" ha sido aprobada. Has recibido %d puntos.", suggestion.Title, reward),
		Data:    data,
	}

	reviewed, err := s.suggestions.Approve(ctx, id, adminID, movie, reward, notification)
	if err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return nil, ErrAlreadyReviewed
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}

	metrics.SuggestionsReviewedTotal.WithLabelValues("approved").Inc()
	metrics.PointsAwardedTotal.Add(float64(reward))
	s.notifier.Broadcast(notification)
	s.economy.RecordReward(ctx, suggestion.UserID, reward, "suggestion:"+suggestion.Title)

	log.Printf("[SuggestionService] admin_id=%d approved suggestion_id=%d, rewarded %d points to user_id=%d",
		adminID, id, reward, suggestion.UserID)
	return reviewed, nil
}

// Reject transitions a pending suggestion to rejected and notifies the
// submitter. No points move.
func (s *SuggestionService) Reject(ctx context.Context, id, adminID int64) (*model.MovieSuggestion, error) {
	suggestion, err := s.suggestions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}

	data, _ := json.Marshal(map[string]interface{}{"suggestionId": id})
	notification := model.Notification{
		UserID:  suggestion.UserID,
		Type:    model.NotificationSuggestionRejected,
		Title:   "Sugerencia rechazada",
		Message: fmt.Sprintf("Tu sugerencia \"%s\" no fue aprobada esta vez", suggestion.Title),
		Data:    data,
	}

	reviewed, err := s.suggestions.Reject(ctx, id, adminID, notification)
	if err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return nil, ErrAlreadyReviewed
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}

	metrics.SuggestionsReviewedTotal.WithLabelValues("rejected").Inc()
	s.notifier.Broadcast(notification)

	log.Printf("[SuggestionService] admin_id=%d rejected suggestion_id=%d", adminID, id)
	return reviewed, nil
}

// List returns suggestions, optionally filtered by status.
func (s *SuggestionService) List(ctx context.Context, status model.SuggestionStatus) ([]model.MovieSuggestion, error) {
	return s.suggestions.List(ctx, status)
}

// ListByUser returns a user's own suggestions, newest first.
func (s *SuggestionService) ListByUser(ctx context.Context, userID int64) ([]model.MovieSuggestion, error) {
	return s.suggestions.ListByUser(ctx, userID)
}
