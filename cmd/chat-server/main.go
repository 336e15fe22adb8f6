package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"chatcore/internal/dbmysql"
	"chatcore/internal/di"
	"chatcore/internal/metrics"
)

func main() {
	app, cleanup, err := di.InitializeServer()
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}
	defer cleanup()

	logger := app.Logger
	logger.Info("starting chat server")

	metrics.Register()

	if err := dbmysql.Migrate(app.DB); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
	logger.Info("database migration completed")

	srv := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      app.Router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("chat server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down chat server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("chat server stopped")
}
