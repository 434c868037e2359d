package model

import "time"

// PointEventKind distinguishes credits from debits in the audit log.
type PointEventKind string

const (
	PointEventEarn  PointEventKind = "earn"
	PointEventSpend PointEventKind = "spend"
)

// PointEvent is an audit record of a single point movement.
type PointEvent struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Kind      PointEventKind `json:"kind"`
	Amount    int64          `json:"amount"`
	Reason    string         `json:"reason"`
	CreatedAt time.Time      `json:"created_at"`
}
