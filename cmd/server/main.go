package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvloznov/networth-dashboard/internal/api/handlers"
	"github.com/dvloznov/networth-dashboard/internal/api/middleware"
	"github.com/dvloznov/networth-dashboard/internal/config"
	"github.com/dvloznov/networth-dashboard/internal/logger"
	"github.com/dvloznov/networth-dashboard/internal/networth"
	"github.com/dvloznov/networth-dashboard/internal/sheets"
)

func main() {
	// Parse command-line flags
	var (
		configFile = flag.String("config", "", "optional YAML config file (overrides environment)")
		port       = flag.Int("port", 0, "HTTP server port (overrides config)")
	)
	flag.Parse()

	// Initialize logger
	log := logger.New()

	// Load configuration
	cfg := config.Load()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config file")
		}
	}
	if *port != 0 {
		cfg.Port = *port
	}

	ctx := context.Background()

	// Initialize the Sheets transport
	grid, err := sheets.NewClient(ctx, sheets.Credentials{
		JSON: cfg.Sheets.CredentialsJSON,
		File: cfg.Sheets.CredentialsFile,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}

	// Ingestion service with the configured defaults
	svc := networth.NewService(grid, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, log)

	// Wrap the service so every request carries a bounded fetch timeout.
	ingestor := &timeoutIngestor{svc: svc, timeout: cfg.Sheets.FetchTimeout}

	netWorthHandler := handlers.NewNetWorthHandler(ingestor, log)

	// API routes require auth when configured; the landing page and health
	// check stay open.
	auth := middleware.BasicAuth(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.PasswordHash, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handlers.Landing)

	mux.Handle("/api/networth", auth(get(netWorthHandler.GetDataset)))
	mux.Handle("/api/networth/latest", auth(get(netWorthHandler.GetLatest)))
	mux.Handle("/api/networth/summary", auth(get(netWorthHandler.GetSummary)))
	mux.Handle("/api/networth/range", auth(get(netWorthHandler.GetRange)))
	mux.Handle("/api/networth/series", auth(get(netWorthHandler.GetSeries)))
	mux.Handle("/api/networth/projections", auth(get(netWorthHandler.GetProjections)))

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting dashboard server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// get restricts a handler to the GET method.
func get(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(w, r)
	})
}

// timeoutIngestor bounds every ingestion with the configured fetch timeout
// so a stalled transport call cannot hold a request open indefinitely.
type timeoutIngestor struct {
	svc     *networth.Service
	timeout time.Duration
}

func (t *timeoutIngestor) Ingest(ctx context.Context, spreadsheetID, sheetName string) (*networth.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.svc.Ingest(ctx, spreadsheetID, sheetName)
}
