package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"course-catalog-go/internal/catalog"
	"course-catalog-go/internal/export"
	"course-catalog-go/internal/sftpclient"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		outPath    = flag.String("out", "catalog.json", "output file path")
		format     = flag.String("format", "json", "output format: json or csv")
		compress   = flag.Bool("brotli", false, "also write a brotli-compressed copy next to the json output")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated file via SFTP")
	)
	flag.Parse()

	// reject bad flag combinations before touching the output directory
	if err := checkFlags(*format, *compress); err != nil {
		log.Fatal(err)
	}

	cat := catalog.New()
	if violations := cat.Validate(); len(violations) > 0 {
		for _, v := range violations {
			log.Errorf("catalog data: %v", v)
		}
		log.Fatal("catalog data is invalid, not exporting")
	}
	course := cat.GetCourse()

	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}

	switch *format {
	case "json":
		err = export.WriteCourseJSON(out, course)
	case "csv":
		err = export.WriteCourseCSV(out, course)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %d lessons to %s", course.TotalLessons, *outPath)

	if *compress {
		brPath := *outPath + ".br"
		br, err := os.Create(brPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := export.WriteCourseJSONBrotli(br, course); err != nil {
			log.Fatal(err)
		}
		if err := br.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote compressed copy to %s", brPath)
	}

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:      os.Getenv("SFTP_HOST"),
			Port:      atoiOr(os.Getenv("SFTP_PORT"), 22),
			User:      os.Getenv("SFTP_USER"),
			Password:  os.Getenv("SFTP_PASS"),
			RemoteDir: getenv("SFTP_DIR", "/catalog"),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		remoteName := filepath.Base(*outPath)
		if err := sftpclient.UploadFile(ctx, upCfg, *outPath, remoteName); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	}
}

func checkFlags(format string, compress bool) error {
	switch format {
	case "json":
	case "csv":
		if compress {
			return errors.New("-brotli is only supported with -format json")
		}
	default:
		return fmt.Errorf("unknown format %q (want json or csv)", format)
	}
	return nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid port %q: %v", s, err)
	}
	return n
}
