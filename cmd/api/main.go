package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/StudioBelezaApps/salon-crm/internal/chat"
	"github.com/StudioBelezaApps/salon-crm/internal/config"
	dbpkg "github.com/StudioBelezaApps/salon-crm/internal/db"
	"github.com/StudioBelezaApps/salon-crm/internal/logger"
	"github.com/StudioBelezaApps/salon-crm/internal/middleware"
	"github.com/StudioBelezaApps/salon-crm/internal/routes"
	"github.com/StudioBelezaApps/salon-crm/internal/session"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Logger)
	defer log.Sync() //nolint:errcheck

	db := dbpkg.NewDB(cfg, log)

	chatStore := newChatStore(cfg, log)
	sessions := session.NewManager()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, chatStore, sessions)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// newChatStore tenta o Redis e cai para memória se ele não responder.
func newChatStore(cfg *config.Config, log *zap.Logger) chat.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, chat store falling back to memory", zap.Error(err))
		return chat.NewMemStore()
	}

	store, err := chat.NewRedisStore(ctx, rdb)
	if err != nil {
		log.Warn("redis seed failed, chat store falling back to memory", zap.Error(err))
		return chat.NewMemStore()
	}

	log.Info("chat store backed by redis", zap.String("addr", cfg.Redis.Addr))
	return store
}
