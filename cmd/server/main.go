package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/rahuljangu01/NEXUS/config"
	chatRepository "github.com/rahuljangu01/NEXUS/internal/chat/repository"
	chatUsecase "github.com/rahuljangu01/NEXUS/internal/chat/usecase"
	connRepository "github.com/rahuljangu01/NEXUS/internal/connection/repository"
	connUsecase "github.com/rahuljangu01/NEXUS/internal/connection/usecase"
	"github.com/rahuljangu01/NEXUS/internal/delivery"
	"github.com/rahuljangu01/NEXUS/internal/presence"
	"github.com/rahuljangu01/NEXUS/internal/transport/rest"
	"github.com/rahuljangu01/NEXUS/internal/transport/ws"
	userRepository "github.com/rahuljangu01/NEXUS/internal/user/repository"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	// Database
	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// Repositories
	userRepo := userRepository.NewUserRepository(db, *lg)
	connRepo := connRepository.NewConnectionRepository(db, *lg)
	msgRepo := chatRepository.NewMessageRepository(db, *lg)

	// Presence + delivery. The presence service is the router's session
	// source so dead handles found mid-push take the full disconnect path.
	registry := presence.NewRegistry()
	lastSeen := presence.NewRedisLastSeenStore(rdb)
	presenceSvc := presence.NewService(registry, connRepo, lastSeen, *lg)
	router := delivery.NewRouter(presenceSvc, *lg)
	presenceSvc.AttachPusher(router)

	// Usecases
	connections := connUsecase.NewConnectionUsecase(connRepo, userRepo, msgRepo, presenceSvc, router, *lg)
	messages := chatUsecase.NewChatUsecase(msgRepo, connRepo, router, *lg)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	rest.NewConnectionHandler(connections, *lg).Register(api)
	rest.NewChatHandler(messages, *lg).Register(api)
	rest.NewUserHandler(userRepo, *lg).Register(api)

	r.Handle("/ws", ws.NewHandler(presenceSvc, *lg)).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		lg.Info("server starting", "port", cfg.Server.Port, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	lg.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("shutdown error", "err", err)
	}
	presenceSvc.Shutdown()
}
