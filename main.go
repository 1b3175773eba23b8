// Entry point of the growtwitter API server. Wires configuration, the
// database pool, migrations, the feature services and handlers, the router
// with its middleware stack, and graceful shutdown.
//
// @title GrowTwitter API
// @version 1.0
// @description Social networking REST API: users, tweets, comments, likes, and follows.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
	"github.com/user/growtwitter-go/comments"
	"github.com/user/growtwitter-go/config"
	"github.com/user/growtwitter-go/db"
	_ "github.com/user/growtwitter-go/docs"
	"github.com/user/growtwitter-go/follows"
	"github.com/user/growtwitter-go/likes"
	"github.com/user/growtwitter-go/tweets"
	"github.com/user/growtwitter-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Warn(".env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := newLogger(cfg)

	pool, err := db.NewPool(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to create database pool")
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database, "./db/migrations", log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	authService := auth.NewService(pool, cfg.Auth, log)
	authHandlers := auth.NewHandlers(authService)

	followService := follows.NewService(pool, log)
	followHandler := follows.NewHandler(followService)

	likeService := likes.NewService(pool, log)
	likeHandler := likes.NewHandler(likeService)

	tweetService := tweets.NewService(pool, followService, likeService, log)
	tweetHandler := tweets.NewHandler(tweetService)

	commentService := comments.NewService(pool, log)
	commentHandler := comments.NewHandler(commentService)

	userService := users.NewService(pool, followService, tweetService, log)
	userHandlers := users.NewHandlers(userService)

	requireAuth := auth.RequireAuth(authService)
	optionalAuth := auth.OptionalAuth(authService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteSuccess(w, http.StatusOK, "pong", nil)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		authHandlers.RegisterRoutes(r)
	})

	r.Route("/tweets", func(r chi.Router) {
		tweetHandler.RegisterRoutes(r, requireAuth, optionalAuth)
		commentHandler.RegisterRoutes(r, requireAuth, optionalAuth)
		likeHandler.RegisterRoutes(r.With(requireAuth))
	})

	r.Route("/users", func(r chi.Router) {
		userHandlers.RegisterRoutes(r, requireAuth, optionalAuth)
		followHandler.RegisterRoutes(r.With(requireAuth))
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server shutdown failed")
	}
	log.Info("server stopped gracefully")
}

// newLogger builds the process logger: JSON in production, colored text
// otherwise, level taken from config.
func newLogger(cfg *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// requestLogger emits one structured line per request, level keyed off the
// response status class.
func requestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			entry := log.WithFields(logrus.Fields{
				"status_code": ww.Status(),
				"latency_ms":  float64(time.Since(start).Microseconds()) / 1000.0,
				"client_ip":   r.RemoteAddr,
				"method":      r.Method,
				"path":        r.URL.Path,
				"request_id":  middleware.GetReqID(r.Context()),
			})

			switch {
			case ww.Status() >= http.StatusInternalServerError:
				entry.Error("request")
			case ww.Status() >= http.StatusBadRequest:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
		})
	}
}

// recoverer converts handler panics into 500 responses instead of dropped
// connections.
func recoverer(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.WithField("panic", fmt.Sprintf("%+v", rvr)).Error("panic recovered")
					auth.WriteError(w, r, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
