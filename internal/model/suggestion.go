package model

import "time"

// SuggestionStatus is the review state of a movie suggestion.
// pending is the only non-terminal state.
type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

// MovieSuggestion is a user-submitted movie proposal subject to admin review.
// It is mutated exactly once, when an admin approves or rejects it.
type MovieSuggestion struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	UserName    string           `json:"user_name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Year        int              `json:"year"`
	Duration    string           `json:"duration"`
	Genres      []string         `json:"genres"`
	Cast        []string         `json:"cast"`
	Director    string           `json:"director"`
	Trailer     string           `json:"trailer,omitempty"`
	Status      SuggestionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
	ReviewedAt  *time.Time       `json:"reviewed_at,omitempty"`
	ReviewedBy  *int64           `json:"reviewed_by,omitempty"`
}

// SuggestionDraft carries the user-supplied fields of a new suggestion.
type SuggestionDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Year        int      `json:"year"`
	Duration    string   `json:"duration"`
	Genres      []string `json:"genres"`
	Cast        []string `json:"cast"`
	Director    string   `json:"director"`
	Trailer     string   `json:"trailer"`
}
