package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/config"
	"github.com/iliyamo/restaurant-ops/internal/database"
	"github.com/iliyamo/restaurant-ops/internal/handler"
	"github.com/iliyamo/restaurant-ops/internal/queue"
	"github.com/iliyamo/restaurant-ops/internal/repository"
	"github.com/iliyamo/restaurant-ops/internal/router"
	"github.com/iliyamo/restaurant-ops/internal/ws"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is absent; cache and limiter fail open

	users := repository.NewUserRepo(db)
	menu := repository.NewMenuRepo(db)
	categories := repository.NewCategoryRepo(db)
	subCategories := repository.NewSubCategoryRepo(db)
	tables := repository.NewTableRepo(db)
	orders := repository.NewOrderRepo(db)
	reservations := repository.NewReservationRepo(db)

	// One hub per live channel: menu edits and the order feed fan out to
	// different audiences.
	menuHub := ws.NewHub("menu")
	orderHub := ws.NewHub("orders")

	publisher := queue.NewPublisher(cfg.RabbitURL)
	go func() {
		if err := queue.StartOrderConsumer(cfg.RabbitURL); err != nil {
			log.Printf("order-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e, router.Deps{
		Cfg:       cfg,
		CacheCfg:  config.LoadCacheConfig(),
		RateCfg:   config.LoadRateLimitConfig(),
		Redis:     rdb,
		Users:     users,
		Auth:      handler.NewAuthHandler(cfg, users),
		UserH:     handler.NewUserHandler(cfg, users),
		Menu:      handler.NewMenuHandler(menu, menuHub),
		Category:  handler.NewCategoryHandler(categories),
		SubCat:    handler.NewSubCategoryHandler(subCategories),
		Table:     handler.NewTableHandler(tables),
		Order:     handler.NewOrderHandler(orders, tables, orderHub, publisher),
		Resv:      handler.NewReservationHandler(reservations, tables),
		MenuGate:  ws.NewGate(cfg.JWTSecret, menuHub),
		OrderGate: ws.NewGate(cfg.JWTSecret, orderHub),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
