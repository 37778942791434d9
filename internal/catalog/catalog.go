package catalog

import (
	"fmt"

	"course-catalog-go/internal/model"
)

// Catalog exposes read-only access to a course dataset. It is immutable after
// construction, so a single instance is safe to share across any number of
// concurrent readers.
type Catalog struct {
	course model.Course
	bySlug map[string]int
	byID   map[int]int
}

// New returns a catalog over the canonical Spatial Mechanics dataset.
func New() *Catalog {
	return NewFrom(spatialMechanics)
}

// NewFrom builds a catalog over an arbitrary course. The input is copied, so
// later mutation of the argument cannot reach the catalog. The dataset is not
// validated here; run Validate to check it.
func NewFrom(course model.Course) *Catalog {
	c := &Catalog{
		course: cloneCourse(course),
		bySlug: make(map[string]int, len(course.Lessons)),
		byID:   make(map[int]int, len(course.Lessons)),
	}

	for i, lesson := range c.course.Lessons {
		c.bySlug[lesson.Slug] = i
		c.byID[lesson.ID] = i
	}

	return c
}

// GetCourse returns the full course document. The result is a fresh copy, so
// callers never hold a mutable alias of the catalog's own data.
func (c *Catalog) GetCourse() model.Course {
	return cloneCourse(c.course)
}

// GetLessons returns the lessons in course order.
func (c *Catalog) GetLessons() []model.Lesson {
	return append([]model.Lesson(nil), c.course.Lessons...)
}

func (c *Catalog) GetLessonBySlug(slug string) (model.Lesson, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return model.Lesson{}, fmt.Errorf("no lesson found with slug %q: %w", slug, ErrLessonNotFound)
	}

	return c.course.Lessons[i], nil
}

func (c *Catalog) GetLessonByID(id int) (model.Lesson, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Lesson{}, fmt.Errorf("no lesson found with id %d: %w", id, ErrLessonNotFound)
	}

	return c.course.Lessons[i], nil
}

func cloneCourse(course model.Course) model.Course {
	out := course
	out.Lessons = append([]model.Lesson(nil), course.Lessons...)
	out.Prerequisites = append([]string(nil), course.Prerequisites...)
	out.LearningOutcomes = append([]string(nil), course.LearningOutcomes...)
	return out
}
