package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"railway-booking-server/config"
	"railway-booking-server/db"
	"railway-booking-server/externals"
	"railway-booking-server/handlers"
	"railway-booking-server/policy"
	"syscall"
	"time"
)

func main() {
	// retrieve configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// get port from flag, overrides the environment
	port := flag.String("port", cfg.ServerPort, "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(cfg)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		err := db.CloseDBConnection()
		if err != nil {
			log.Println("Failed closing connection: ", err)
		}
	}()

	ctx := context.Background()

	// init identity provider
	verifier, err := newTokenVerifier(ctx, cfg)
	if err != nil {
		log.Fatalf("Error initializing authentication: %v", err)
	}

	// init access policy
	authorizer, err := policy.NewAuthorizer(ctx)
	if err != nil {
		log.Fatalf("Error initializing access policy: %v", err)
	}
	handlers.InitializeAuthentication(verifier, authorizer)

	// setup routes
	server := SetupServer(*port, cfg.TestMode)

	go func() {
		log.Printf("Server listening on port %s (%s mode, %s database)", *port, cfg.TestMode, cfg.DBDriver)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// wait for termination
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Println("Error shutting down server: ", err)
	}
}

func newTokenVerifier(ctx context.Context, cfg config.Config) (externals.TokenVerifier, error) {
	if cfg.AuthMode == config.AuthModeLocal {
		return externals.NewLocalTokenVerifier(cfg.LocalTokenSecret), nil
	}
	verifier, err := externals.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
	if err != nil {
		return nil, err
	}
	return verifier, nil
}
