package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/config"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/domain"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/handler"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/ports"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/server"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/store"
	"github.com/Steve-p-Dev/Plaza-Bernal-App/internal/ticket"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Catalog & order store. State is volatile; the standing menu is
	// seeded on every start.
	posStore := store.New(logger)
	posStore.SeedDefaults()

	// Ticket store: Firestore when a project is configured, in-memory
	// otherwise (offline mode).
	var ticketStore ticket.Store
	var ticketHealth ports.HealthChecker
	if cfg.FirebaseProjectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, firebaseOptions(cfg)...)
		if err != nil {
			logger.Error("failed to init firebase app", "err", err)
			os.Exit(1)
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			logger.Error("failed to init firestore client", "err", err)
			os.Exit(1)
		}
		defer client.Close()
		fs := ticket.NewFirestoreStore(client, cfg.TicketsCollection, logger)
		ticketStore, ticketHealth = fs, fs
		logger.Info("ticket feed backed by firestore", "project", cfg.FirebaseProjectID, "collection", cfg.TicketsCollection)
	} else {
		ms := ticket.NewMemoryStore()
		ticketStore, ticketHealth = ms, ms
		logger.Warn("no firebase project configured, ticket feed runs in-memory")
	}

	feed := ticket.NewFeed(ticketStore, logger)
	stopFeed := feed.Subscribe(ctx, func(tickets []domain.Ticket) {
		logger.Debug("tickets updated", "count", len(tickets))
	})
	defer stopFeed()

	// handlers
	healthHandler := handler.HealthHandler{Tickets: ticketHealth}
	summaryHandler := handler.SummaryHandler{Store: posStore, Currency: cfg.DefaultCurrency}

	router := server.NewRouter(cfg, logger, healthHandler, summaryHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func firebaseOptions(cfg config.Config) []option.ClientOption {
	if cfg.FirebaseCredFile == "" {
		return nil
	}

	cred := cfg.FirebaseCredFile
	// Allow inline JSON or base64-encoded JSON in env to avoid writing a file.
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}

	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
