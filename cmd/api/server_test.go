package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course-catalog-go/internal/catalog"
	"course-catalog-go/internal/model"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *Server {
	return NewServer(8080, catalog.New(), nil)
}

func doRequest(t *testing.T, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest("GET", path, nil)
	if err != nil {
		t.Fatalf("Could not create GET request: %v", err)
	}

	recorder := httptest.NewRecorder()
	newTestServer().router().ServeHTTP(recorder, req)
	return recorder
}

func TestGetCourse(t *testing.T) {
	resp := doRequest(t, "/course")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

	var course model.Course
	if err := json.NewDecoder(resp.Body).Decode(&course); err != nil {
		t.Fatalf("Could not decode course response: %v", err)
	}

	assert.Equal(t, "Spatial Mechanics", course.Title)
	assert.Equal(t, 6, course.TotalLessons)
	assert.Len(t, course.Lessons, 6)
}

func TestListLessons(t *testing.T) {
	resp := doRequest(t, "/lessons")
	assert.Equal(t, http.StatusOK, resp.Code)

	var lessons []model.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lessons); err != nil {
		t.Fatalf("Could not decode lessons response: %v", err)
	}

	assert.Len(t, lessons, 6)
	assert.Equal(t, 1, lessons[0].ID)
}

func TestGetLessonByID(t *testing.T) {
	resp := doRequest(t, "/lessons/3")
	assert.Equal(t, http.StatusOK, resp.Code)

	var lesson model.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lesson); err != nil {
		t.Fatalf("Could not decode lesson response: %v", err)
	}

	assert.Equal(t, "3D Rotation Matrices and Spatial Transformations", lesson.Title)
}

func TestGetLessonBySlug(t *testing.T) {
	resp := doRequest(t, "/lessons/matrix-methods-link-modeling")
	assert.Equal(t, http.StatusOK, resp.Code)

	var lesson model.Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lesson); err != nil {
		t.Fatalf("Could not decode lesson response: %v", err)
	}

	assert.Equal(t, 4, lesson.ID)
	assert.Equal(t, "Stewart Platform (Hexapod)", lesson.System)
}

func TestGetLessonByIDNotFound(t *testing.T) {
	resp := doRequest(t, "/lessons/99")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Could not decode error response: %v", err)
	}
	assert.Contains(t, body["error"], "no lesson found with id 99")
}

func TestShutdownStopsRunningServer(t *testing.T) {
	// port 0 lets the kernel pick a free port
	server := NewServer(0, catalog.New(), nil)

	done := make(chan error, 1)
	go func() {
		done <- server.Run()
	}()

	// Allow some time for the server to start
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Fatalf("Server Shutdown Failed: %v", err)
	}

	assert.ErrorIs(t, <-done, http.ErrServerClosed)
}

func TestShutdownBeforeRun(t *testing.T) {
	server := NewServer(0, catalog.New(), nil)
	assert.NoError(t, server.Shutdown(context.Background()))
}

func TestGetLessonBySlugNotFound(t *testing.T) {
	resp := doRequest(t, "/lessons/not-a-real-slug")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Could not decode error response: %v", err)
	}
	assert.Contains(t, body["error"], `no lesson found with slug "not-a-real-slug"`)
}
