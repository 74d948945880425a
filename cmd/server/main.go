package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vsinha/lotsize/pkg/infrastructure/repositories/sqlite"
	"github.com/vsinha/lotsize/pkg/interfaces/api"
)

func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open plan store %s: %v", cfg.DatabasePath, err)
	}
	defer store.Close()

	handler := api.NewHandler(store)
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: api.NewRouter(handler, cfg),
	}

	go func() {
		log.Printf("listening on %s (db: %s)", cfg.Address, cfg.DatabasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
