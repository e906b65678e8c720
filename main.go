package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/andrew-x/card-counter/cliparse"
	"github.com/andrew-x/card-counter/db"
	"github.com/andrew-x/card-counter/gamestore"
	"github.com/andrew-x/card-counter/middleware"
	"github.com/andrew-x/card-counter/recognizer"
	"github.com/andrew-x/card-counter/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the snapshot database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (snapshot table)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Build the store and hydrate it from the persisted snapshot before
	// the server takes any reads
	snapshots := db.NewSnapshotStore(dbConn, cfg.DriverName())
	store := gamestore.New(snapshots)

	games, err := snapshots.Load()
	if err != nil {
		slog.Error("snapshot load failed", "error", err)
		os.Exit(1)
	}
	store.Hydrate(games)
	slog.Info("Store hydrated", "games", len(games))

	// Card recognition service is optional
	var rec recognizer.Recognizer
	if cfg.RecognizerURL != "" {
		rec = recognizer.NewClient(cfg.RecognizerURL, cfg.RecognizerKey)
	} else {
		slog.Info("No recognizer configured, scan endpoint disabled")
	}

	// Create router
	mux := router.NewRouter(store, rec, cfg)

	// Create server; the web client is served from a different origin
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
