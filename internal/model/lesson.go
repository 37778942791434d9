package model

// Lesson is one unit of the curriculum. ID matches the lesson's position in
// the course (1-based) and Slug is its URL-safe identifier.
type Lesson struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	System     string     `json:"system"`
	Duration   string     `json:"duration"`
	Difficulty Difficulty `json:"difficulty"`
}
