package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jagv091205/Circle/internal/auth"
	"github.com/jagv091205/Circle/internal/blob"
	"github.com/jagv091205/Circle/internal/config"
	"github.com/jagv091205/Circle/internal/httpapi"
	"github.com/jagv091205/Circle/internal/service"
	"github.com/jagv091205/Circle/internal/storage/sqlite"
	"github.com/jagv091205/Circle/pkg/logging"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./circleplus.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logging.Setup(cfg.LogLevel)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Storage.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.DBPath)

	// Initialize blob storage
	blobs, err := blob.NewFSStore(cfg.Storage.BlobRoot, cfg.Storage.BlobURLBase)
	if err != nil {
		slog.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Blob storage initialized", "root", cfg.Storage.BlobRoot, "url_base", cfg.Storage.BlobURLBase)

	// Auth
	ttl, err := cfg.TokenTTL()
	if err != nil {
		slog.Error("Invalid token TTL", "error", err)
		os.Exit(1)
	}
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, ttl)
	authenticator := auth.NewPasswordAuthenticator(store)

	// Services
	api := &httpapi.API{
		Auth:    service.NewAuthService(authenticator, jwtManager),
		Users:   service.NewUserService(store, blobs),
		Circles: service.NewCircleService(store, blobs),
		Posts:   service.NewPostService(store, blobs),
		Chat:    service.NewChatService(store),
	}

	router := httpapi.NewRouter(api, jwtManager, blobs.Root(), cfg.Storage.BlobURLBase)

	// Wrap with h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(router, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Server.ListenAddr)
	if err := http.ListenAndServe(cfg.Server.ListenAddr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
