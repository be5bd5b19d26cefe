package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/ingest"
	"github.com/jiaming2012/option-inquiry/src/inquiry"
	"github.com/jiaming2012/option-inquiry/src/logger"
	"github.com/jiaming2012/option-inquiry/src/metrics"
	"github.com/jiaming2012/option-inquiry/src/router"
	"github.com/jiaming2012/option-inquiry/src/sheets"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func main() {
	ctx := context.Background()

	projectsDir := utils.GetEnvOrDefault("PROJECTS_DIR", ".")
	goEnv := utils.GetEnvOrDefault("GO_ENV", "development")
	if err := utils.InitEnvironmentVariables(projectsDir, goEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	if err := logger.Setup(utils.GetEnvOrDefault("LOG_LEVEL", "info"), goEnv); err != nil {
		log.Fatalf("failed to setup logger: %v", err)
	}

	cfg, err := inquiry.LoadConfig(os.Getenv("INQUIRY_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load engine config: %v", err)
	}

	reg := metrics.NewRegistry()
	engine := inquiry.NewEngine(cfg, inquiry.WithRecorder(reg))

	// setup quote tables
	workbooks := splitList(os.Getenv("QUOTE_WORKBOOKS"))
	spreadsheetId := os.Getenv("QUOTE_SPREADSHEET_ID")
	cache := ingest.NewCache(sheets.NewLoader(workbooks, spreadsheetId), reg.RecordWorkbookLoad)
	if err := cache.Reload(ctx); err != nil {
		log.Fatalf("failed to load quote tables: %v", err)
	}

	// setup router
	r := mux.NewRouter()
	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r.Use(logger.RequestLogger(log.StandardLogger()))
	router.SetupHandler(r, engine, cache, router.NewRecordStore(reg.SetInquiryRecords), reg)

	// start the http server
	srv := &http.Server{
		Handler: r,
		Addr:    fmt.Sprintf(":%s", port),
	}

	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				log.Fatalf("http: failed to listen and serve: %v", err)
			}
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	<-stop
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down server %s", err)
	} else {
		log.Println("Server gracefully stopped")
	}
}
