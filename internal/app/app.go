// Package app assembles the mock backend: storage, seeding, services and
// the HTTP router.
package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sneha-8765/task-manager/internal/config"
	"github.com/Sneha-8765/task-manager/internal/seed"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

type App struct {
	cfg    config.Config
	store  *storage.Store
	router *gin.Engine
}

// New builds the application. With an empty Store.Dir the backend keeps
// everything in memory, like a fresh browser profile.
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var kv storage.KV
	if cfg.Store.Dir != "" {
		fkv, err := storage.NewFileKV(cfg.Store.Dir, log)
		if err != nil {
			return nil, err
		}
		kv = fkv
	} else {
		kv = storage.NewMemoryKV()
	}

	store := storage.New(kv, log)
	seed.Ensure(store)

	a := &App{cfg: cfg, store: store}
	a.router = newRouter(cfg, store, log)
	return a, nil
}

// Router returns the assembled gin engine. It doubles as the interception
// target for in-process clients (see internal/mockapi).
func (a *App) Router() *gin.Engine {
	return a.router
}

// Store exposes the persistence layer, mainly so state slices can share it.
func (a *App) Store() *storage.Store {
	return a.store
}

func newRouter(cfg config.Config, store *storage.Store, log *zap.Logger) *gin.Engine {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLog(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, store)
	return r
}
