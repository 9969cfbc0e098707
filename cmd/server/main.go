package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/orlcoffee/coffee-shop-finder/internal/cache"
	"github.com/orlcoffee/coffee-shop-finder/internal/config"
	"github.com/orlcoffee/coffee-shop-finder/internal/database"
	"github.com/orlcoffee/coffee-shop-finder/internal/handler"
	"github.com/orlcoffee/coffee-shop-finder/internal/repository"
	"github.com/orlcoffee/coffee-shop-finder/internal/router"
	"github.com/orlcoffee/coffee-shop-finder/internal/view"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	// The cache is an optimization: without Redis the app still serves
	// every request, just from an in-process store.
	var store cache.Store
	if rdb := config.NewRedisClient(); rdb != nil {
		store = cache.NewRedisStore(rdb, cfg.CachePrefix, cfg.CacheTTL)
	} else {
		log.Printf("redis unavailable, falling back to in-memory cache")
		store = cache.NewMemoryStore(cfg.CacheTTL)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("template parse failed: %v", err)
	}

	shops := repository.NewShopRepo(db)
	comments := repository.NewCommentRepo(db)
	admins := repository.NewAdminRepo(db)

	e := echo.New()
	e.Renderer = renderer
	router.Register(e, cfg, store,
		handler.NewPublicHandler(cfg, shops, comments, admins, store),
		handler.NewAuthHandler(cfg, admins),
		handler.NewAdminHandler(cfg, shops))

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (env=%s)", cfg.AppName, addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
