package model

// Course is the full curriculum document. Lesson order is significant: it
// defines the course progression. The json tags are the external catalog
// schema consumed by the course site.
type Course struct {
	Title            string   `json:"courseTitle"`
	Description      string   `json:"courseDescription"`
	TotalLessons     int      `json:"totalLessons"`
	Lessons          []Lesson `json:"lessons"`
	Prerequisites    []string `json:"prerequisites"`
	LearningOutcomes []string `json:"learningOutcomes"`
}
