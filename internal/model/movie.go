package model

// Movie is a catalog entry. Static entries ship with the binary; community
// entries are created when a suggestion is approved.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Year        int      `json:"year"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Genres      []string `json:"genres"`
	Cast        []string `json:"cast"`
	Director    string   `json:"director"`
	Trailer     string   `json:"trailer,omitempty"`
}

// Category is a catalog taxonomy entry.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
