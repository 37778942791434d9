package export

import (
	"encoding/json"
	"fmt"
	"io"

	"course-catalog-go/internal/model"
	"github.com/andybalholm/brotli"
)

// WriteCourseJSON writes the course in the external catalog schema, indented
// so the published file stays diffable.
func WriteCourseJSON(w io.Writer, course model.Course) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(course)
}

// WriteCourseJSONBrotli writes the same JSON document through a brotli
// writer, for drop directories that expect pre-compressed artifacts.
func WriteCourseJSONBrotli(w io.Writer, course model.Course) error {
	bw := brotli.NewWriter(w)
	if err := WriteCourseJSON(bw, course); err != nil {
		return err
	}
	return bw.Close()
}

// ReadCourseJSON decodes a catalog document produced by WriteCourseJSON.
func ReadCourseJSON(r io.Reader) (model.Course, error) {
	var course model.Course
	if err := json.NewDecoder(r).Decode(&course); err != nil {
		return model.Course{}, fmt.Errorf("decoding catalog json: %w", err)
	}
	return course, nil
}
