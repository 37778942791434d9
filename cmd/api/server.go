package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"course-catalog-go/internal/catalog"
	"github.com/gorilla/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	port    int
	catalog *catalog.Catalog
	nrApp   *newrelic.Application
	httpSrv *http.Server
}

func NewServer(port int, cat *catalog.Catalog, nrApp *newrelic.Application) *Server {
	return &Server{
		port:    port,
		catalog: cat,
		nrApp:   nrApp,
	}
}

func (s *Server) Run() error {
	address := "0.0.0.0"

	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf("%v:%v", address, s.port),
		Handler: s.router(),
	}

	log.Printf("listening requests at %v:%v", address, s.port)

	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter()

	s.handle(router, "/course", s.getCourse)
	s.handle(router, "/lessons", s.listLessons)
	// numeric ids first so they never match as slugs
	s.handle(router, "/lessons/{id:[0-9]+}", s.getLessonByID)
	s.handle(router, "/lessons/{slug}", s.getLessonBySlug)

	return router
}

func (s *Server) handle(router *mux.Router, pattern string, handler http.HandlerFunc) {
	pattern, handler = newrelic.WrapHandleFunc(s.nrApp, pattern, handler)
	router.HandleFunc(pattern, handler).Methods("GET")
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.GetCourse())
}

func (s *Server) listLessons(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.GetLessons())
}

func (s *Server) getLessonByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lesson, err := s.catalog.GetLessonByID(id)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, lesson)
}

func (s *Server) getLessonBySlug(w http.ResponseWriter, r *http.Request) {
	lesson, err := s.catalog.GetLessonBySlug(mux.Vars(r)["slug"])
	if err != nil {
		s.writeLookupError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, lesson)
}

func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, catalog.ErrLessonNotFound) {
		status = http.StatusNotFound
	}

	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}
