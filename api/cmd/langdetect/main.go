package main

import (
	"context"
	"log"
	"net/http"

	"lang-detect/api/internal/app"
	"lang-detect/api/internal/config"
	"lang-detect/api/internal/handle"
	"lang-detect/api/internal/retention"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.New(context.Background(), cfg, true)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer a.Close()

	var rows retention.RowDeleter
	if a.Repo != nil {
		rows = a.Repo
	}
	sched, err := retention.Start(cfg.RetentionSchedule, retention.NewPruner(cfg.ResultDir, cfg.ReportRetention, rows))
	if err != nil {
		log.Fatalf("retention: %v", err)
	}
	defer sched.Stop()

	h := handle.New(a)

	addr := ":" + cfg.Port
	log.Printf("langdetect listening on %s (oracle: %s)", addr, cfg.OracleEngine)
	log.Fatal(http.ListenAndServe(addr, h.Routes()))
}
