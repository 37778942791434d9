package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"course-catalog-go/internal/catalog"
	"github.com/newrelic/go-agent/v3/newrelic"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Println("starting course catalog server")

	cfg, err := ReadConfig()
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("converting port to integer: %v", err)
	}

	cat := catalog.New()
	if violations := cat.Validate(); len(violations) > 0 {
		for _, v := range violations {
			log.Errorf("catalog data: %v", v)
		}
		log.Fatal("refusing to serve an invalid catalog")
	}

	var nrApp *newrelic.Application
	if cfg.NewRelicLicense != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName("course-catalog-api"),
			newrelic.ConfigLicense(cfg.NewRelicLicense),
		)
		if err != nil {
			log.Fatalf("creating new relic application: %v", err)
		}
	}

	server := NewServer(port, cat, nrApp)

	go func() {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down course catalog server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutting down server: %v", err)
	}
}
