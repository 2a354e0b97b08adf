package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"spendwise-server/src/api"
	"spendwise-server/src/cache"
	"spendwise-server/src/config"
	"spendwise-server/src/store"
	"spendwise-server/src/store/postgres"
	"spendwise-server/src/store/sqlite"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	cache.Init()

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StorageBackend, err)
	}
	defer st.Close()

	router := api.NewRouter(st, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("INFO: API server running on %s (%s backend)", addr, cfg.StorageBackend)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return sqlite.Open(cfg.SQLitePath)
	default:
		return postgres.Connect(context.Background(), cfg.DatabaseURL)
	}
}
