// cmd/store/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	shared "naturalglow/internal/platform/di/shared"
	storeDI "naturalglow/internal/platform/di/store"
)

func main() {
	ctx := context.Background()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	infra, err := shared.NewInfra(ctx)
	if err != nil {
		log.Fatalf("[boot] infra init failed: %v", err)
	}
	defer infra.Close()

	container, err := storeDI.NewContainer(ctx, infra)
	if err != nil {
		log.Fatalf("[boot] container init failed: %v", err)
	}
	defer container.Close()

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      container.Handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c
		log.Printf("[shutdown] signal received: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[shutdown] server shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("[boot] storefront listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[boot] listen: %v", err)
	}
	<-idleConnsClosed
	log.Printf("[shutdown] bye")
}
