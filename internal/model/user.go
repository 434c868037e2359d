package model

import "time"

// User represents a registered account. The point balance and the inventory
// are owned by this record; all mutation goes through the repositories.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar"`
	Points       int64     `json:"points"`
	IsAdmin      bool      `json:"is_admin"`
	JoinDate     string    `json:"join_date"` // date only, YYYY-MM-DD
	Inventory    Inventory `json:"inventory"`
	CreatedAt    time.Time `json:"created_at"`
}

// Level represents a loyalty tier derived from the point balance.
type Level struct {
	Level          int    `json:"level"`
	Name           string `json:"name"`
	PointsRequired int64  `json:"points_required"`
}

var levels = []Level{
	{Level: 1, Name: "Novato", PointsRequired: 0},
	{Level: 2, Name: "Aficionado", PointsRequired: 50},
	{Level: 3, Name: "Cinéfilo", PointsRequired: 150},
	{Level: 4, Name: "Crítico", PointsRequired: 400},
	{Level: 5, Name: "Leyenda", PointsRequired: 1000},
}

// LevelFor returns the highest level whose threshold the balance meets.
func LevelFor(points int64) Level {
	current := levels[0]
	for _, l := range levels {
		if points >= l.PointsRequired {
			current = l
		}
	}
	return current
}
