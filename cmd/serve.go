package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewpaige1/studysnap-api/ai"
	"github.com/andrewpaige1/studysnap-api/config"
	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/handlers"
	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/andrewpaige1/studysnap-api/middleware"
	"github.com/andrewpaige1/studysnap-api/service"
	"github.com/andrewpaige1/studysnap-api/store"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	// Initialize database connection
	db, err := config.Connect(cfg.DB, log)
	if err != nil {
		return err
	}

	broker, err := newBroker(cfg.Redis, log)
	if err != nil {
		return err
	}
	defer broker.Close()

	st := store.New(db)
	aiClient := ai.NewClient(ai.Options{
		BaseURL:   cfg.AI.BaseURL,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
		Timeout:   cfg.AI.Timeout,
	}, log)
	studyHandler := handlers.NewStudyHandler(service.New(st, aiClient, broker, log), log)

	authMiddleware, err := middleware.EnsureValidToken(cfg.JWT, log)
	if err != nil {
		return err
	}

	api := http.NewServeMux()
	studyHandler.Register(api)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handlers.Healthz)
	mux.Handle("/api/", authMiddleware(middleware.SyncUser(st, log)(api)))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           middleware.RequestLogger(log)(corsHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr, "env", cfg.Env, "db_driver", cfg.DB.Driver)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newBroker shares snapshots over Redis when an address is configured and
// keeps them in process otherwise.
func newBroker(cfg config.RedisConfig, log *logger.Logger) (events.Broker, error) {
	if cfg.Addr == "" {
		return events.NewMemoryBroker(log), nil
	}
	return events.NewRedisBroker(cfg.Addr, cfg.ChannelPrefix, log)
}
