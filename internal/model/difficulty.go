package model

// Difficulty labels the expected learner skill level for a lesson.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
	Expert       Difficulty = "Expert"
)

// Difficulties lists every allowed difficulty, easiest first.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced, Expert}

func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}
