package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"eventregistration/config"
	"eventregistration/internal/adapters/email"
	deliveryhttp "eventregistration/internal/delivery/http"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/repository/postgres"
	"eventregistration/internal/services"
	"eventregistration/internal/validation"
)

var (
	serverPort  string
	skipMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (and .env outside production)
- Apply pending database migrations unless --skip-migrate is set
- Serve the REST API, /health, /metrics and /swagger/
- Shut down gracefully on SIGINT/SIGTERM

Examples:
  server serve
  server serve --port 9090 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 8080)")
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations on startup")
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}

	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("starting event registration server", "env", cfg.Environment, "version", Version)

	db, err := openDB(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if !skipMigrate {
		if err := postgres.MigrateUp(cfg.DBUrl); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	handler, err := buildHandler(cfg, db, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

func openDB(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// buildHandler wires repositories, services and controllers into the HTTP router.
func buildHandler(cfg *config.Config, db *sql.DB, logger *slog.Logger) (http.Handler, error) {
	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	store := postgres.NewRegistrationStore(db, cfg.MaxRetries)
	validator := validation.New(cfg.MaxEventCapacity)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	eventService := services.NewEventService(eventRepo, validator, cfg.RequestTimeout)
	attendeeService := services.NewAttendeeService(eventRepo, attendeeRepo, store, emailService, validator, logger, cfg.RequestTimeout)

	return deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:             logger,
		Events:             controllers.NewEventController(logger, eventService),
		Attendees:          controllers.NewAttendeeController(logger, attendeeService),
		Health:             controllers.NewHealthController(logger, db),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	}), nil
}
