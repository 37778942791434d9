package main

import (
	"fmt"

	"course-catalog-go/internal/catalog"
	log "github.com/sirupsen/logrus"
)

// Run from CI so a bad data edit fails the build instead of shipping.
func main() {
	log.SetLevel(log.InfoLevel)
	log.Println("starting catalog validation")

	violations := catalog.New().Validate()

	if len(violations) == 0 {
		fmt.Println("Catalog data is well-formed!")
		return
	}

	for _, v := range violations {
		log.Errorf("violation: %v", v)
	}
	log.Fatalf("catalog data has %d violations", len(violations))
}
