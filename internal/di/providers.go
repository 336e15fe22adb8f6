package di

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatcore/internal/common"
	"chatcore/internal/config"
	convohandler "chatcore/internal/convo/handler"
	"chatcore/internal/dbmysql"
	"chatcore/internal/session"
	"chatcore/internal/user"
)

// App bundles everything the server binary needs.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *mux.Router
	Logger *zap.Logger
}

func newApp(cfg *config.Config, db *gorm.DB, router *mux.Router, logger *zap.Logger) *App {
	return &App{Config: cfg, DB: db, Router: router, Logger: logger}
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Server.Environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg.DSN(), cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func provideRedis(cfg *config.Config) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return rdb, func() { _ = rdb.Close() }, nil
}

func provideTokenIssuer(cfg *config.Config) *common.TokenIssuer {
	return common.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)
}

func provideRouter(
	issuer *common.TokenIssuer,
	convHandler *convohandler.ConversationHandler,
	userHandler *user.Handler,
	gateway *session.Gateway,
) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/ws", gateway)

	userHandler.RegisterPublic(r.PathPrefix("/api/auth").Subrouter())

	api := r.PathPrefix("/api").Subrouter()
	api.Use(common.AuthMiddleware(issuer))
	convHandler.Register(api)
	userHandler.RegisterAuthed(api)

	return r
}
