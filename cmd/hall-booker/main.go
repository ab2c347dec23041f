package main

import (
	"context"
	"errors"
	"hallBooker/internal/catalog"
	"hallBooker/internal/chat"
	"hallBooker/internal/config"
	"hallBooker/internal/http-server/handlers/admin/deleteUser"
	"hallBooker/internal/http-server/handlers/admin/listUsers"
	"hallBooker/internal/http-server/handlers/auth/login"
	"hallBooker/internal/http-server/handlers/auth/signup"
	"hallBooker/internal/http-server/handlers/booking/cancelBooking"
	"hallBooker/internal/http-server/handlers/booking/createBooking"
	"hallBooker/internal/http-server/handlers/booking/getAvailability"
	"hallBooker/internal/http-server/handlers/booking/listBookings"
	"hallBooker/internal/http-server/handlers/chat/aiChat"
	"hallBooker/internal/http-server/handlers/feedback/listFeedback"
	"hallBooker/internal/http-server/handlers/feedback/submitFeedback"
	"hallBooker/internal/http-server/handlers/health"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/http-server/middleware/mwlogger"
	"hallBooker/internal/http-server/middleware/ratelimit"
	"hallBooker/internal/lib/jwt"
	"hallBooker/internal/lib/logger/handlers/slogpretty"
	"hallBooker/internal/lib/logger/sl"
	"hallBooker/internal/storage/postgres"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting hall booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(context.Background()); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	if version, err := storage.Version(context.Background()); err == nil {
		log.Info("database schema ready", slog.Int64("version", version))
	}

	halls := catalog.Default()
	tokens := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	loc := cfg.Chat.MustLocation()
	assistant := chat.New(chat.DefaultVocabulary(), storage, chat.WithClock(func() time.Time {
		return time.Now().In(loc)
	}))
	limiter := ratelimit.New(log, cfg.Chat.RateLimit, cfg.Chat.Burst)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", health.New())

	router.Post("/auth/signup", signup.New(log, storage, tokens))
	router.Post("/auth/login", login.New(log, storage, tokens))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, tokens))

		r.Get("/api/bookings", listBookings.New(log, storage))
		r.Post("/api/bookings", createBooking.New(log, halls, storage))
		r.Delete("/api/bookings/{id}", cancelBooking.New(log, storage))
		r.Get("/api/availability", getAvailability.New(log, halls, storage))

		r.With(limiter.Limit).Post("/api/ai-chat", aiChat.New(log, assistant))

		r.Post("/feedback/submit", submitFeedback.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.AdminOnly(log))

			r.Get("/admin/users", listUsers.New(log, storage))
			r.Delete("/admin/users/{id}", deleteUser.New(log, storage))
			r.Get("/feedback", listFeedback.New(log, storage))
		})
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
