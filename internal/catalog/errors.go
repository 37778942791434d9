package catalog

import "errors"

var ErrLessonNotFound = errors.New("no such lesson")
