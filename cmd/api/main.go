package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goa.design/clue/log"

	"fortiercars/internal/config"
	"fortiercars/internal/database"
	"fortiercars/internal/server"
	"fortiercars/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logging
	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	opts := []log.LogOption{log.WithFormat(format)}
	if cfg.App.Debug {
		opts = append(opts, log.WithDebug())
	}
	ctx := log.Context(context.Background(), opts...)

	log.Printf(ctx, "Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf(ctx, "Environment: debug=%v, port=%s, host=%s", cfg.App.Debug, cfg.App.Port, cfg.App.Host)

	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf(ctx, err, "Failed to initialize database")
	}
	defer func() {
		log.Printf(ctx, "Closing database connections...")
		if err := database.Close(db); err != nil {
			log.Errorf(ctx, err, "Error closing database")
		}
	}()

	store := database.NewStore(db)
	// A failed bootstrap is logged by the store; the API still serves.
	_ = store.Bootstrap(ctx, cfg.Database.Seed)

	log.Printf(ctx, "Initializing services...")
	now := func() time.Time { return time.Now().UTC() }
	svc := &server.Services{
		Health:       services.NewHealthService(store, cfg.App.Name),
		Contacts:     services.NewContactService(store, now),
		Inquiries:    services.NewInquiryService(store, now),
		Testimonials: services.NewTestimonialService(store, now),
		Vehicles:     services.NewVehicleService(store, now),
		Dashboard:    services.NewDashboardService(store, now),
	}

	handler, srv := server.NewHTTPHandler(ctx, cfg, svc)
	for _, m := range srv.Mounts {
		log.Debugf(ctx, "Mounted %s %s (%s)", m.Verb, m.Pattern, m.Method)
	}

	addr := cfg.App.Addr()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf(ctx, "Server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Errorf(ctx, err, "Server failed to start")
		return
	case sig := <-shutdown:
		log.Printf(ctx, "Received signal: %v. Starting graceful shutdown...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf(ctx, err, "Error during graceful shutdown")
		if errors.Is(err, context.DeadlineExceeded) {
			log.Printf(ctx, "Shutdown timeout exceeded, forcing close...")
			_ = httpServer.Close()
		}
	}

	log.Printf(ctx, "Server shutdown complete")
}
