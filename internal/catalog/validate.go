package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"course-catalog-go/internal/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks the catalog's dataset against every structural invariant
// and returns one human-readable violation per breach. An empty list means
// the data is well-formed. Intended for build and test time, not as runtime
// control flow.
func (c *Catalog) Validate() []string {
	return ValidateCourse(c.course)
}

// ValidateCourse is the invariant check behind Catalog.Validate, exposed so
// deserialized course documents can be checked before use.
func ValidateCourse(course model.Course) []string {
	var violations []string
	add := func(format string, args ...interface{}) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(course.Title) == "" {
		add("course title is empty")
	}
	if strings.TrimSpace(course.Description) == "" {
		add("course description is empty")
	}
	if course.TotalLessons != len(course.Lessons) {
		add("totalLessons is %d but %d lessons are defined", course.TotalLessons, len(course.Lessons))
	}

	checkTextList(add, "prerequisites", course.Prerequisites)
	checkTextList(add, "learning outcomes", course.LearningOutcomes)

	seenSlug := make(map[string]int, len(course.Lessons))
	seenID := make(map[int]bool, len(course.Lessons))

	for i, lesson := range course.Lessons {
		want := i + 1

		if lesson.ID != want {
			add("lesson at position %d has id %d, want %d", want, lesson.ID, want)
		}
		if seenID[lesson.ID] {
			add("duplicate lesson id %d", lesson.ID)
		}
		seenID[lesson.ID] = true

		if strings.TrimSpace(lesson.Title) == "" {
			add("lesson %d has an empty title", want)
		}
		if strings.TrimSpace(lesson.System) == "" {
			add("lesson %d has an empty system", want)
		}

		if !slugPattern.MatchString(lesson.Slug) {
			add("lesson %d has malformed slug %q", want, lesson.Slug)
		}
		if first, dup := seenSlug[lesson.Slug]; dup {
			add("lesson %d reuses slug %q from lesson %d", want, lesson.Slug, first)
		} else {
			seenSlug[lesson.Slug] = want
		}

		if _, err := model.ParseDuration(lesson.Duration); err != nil {
			add("lesson %d: %v", want, err)
		}

		if !lesson.Difficulty.Valid() {
			add("lesson %d has unknown difficulty %q", want, lesson.Difficulty)
		}
	}

	return violations
}

func checkTextList(add func(string, ...interface{}), name string, entries []string) {
	if len(entries) == 0 {
		add("%s list is empty", name)
		return
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			add("%s entry %d is empty", name, i+1)
		}
	}
}
