package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"course-catalog-go/internal/model"
)

// Catalog CSV layout consumed by the course site importer.
// Keep header order EXACT.
var catalogHeader = []string{
	"LESSON_ID",
	"LESSON_TITLE",
	"LESSON_SLUG",
	"SYSTEM",
	"DURATION",
	"DIFFICULTY",
	"COURSE_TITLE",
}

// WriteCourseCSV writes one row per lesson in course order.
func WriteCourseCSV(w io.Writer, course model.Course) error {
	cw := csv.NewWriter(w)
	// match typical import templates
	cw.UseCRLF = true

	if err := cw.Write(catalogHeader); err != nil {
		return err
	}

	for _, lesson := range course.Lessons {
		row := []string{
			strconv.Itoa(lesson.ID),
			lesson.Title,
			lesson.Slug,
			lesson.System,
			lesson.Duration,
			string(lesson.Difficulty),
			course.Title,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
