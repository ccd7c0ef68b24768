package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "multisuministros-codes/internal/adapter/http"
	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/internal/adapter/repository/gormrepo"
	"multisuministros-codes/internal/config"
	"multisuministros-codes/internal/infrastructure/cache"
	dbinfra "multisuministros-codes/internal/infrastructure/db"
	"multisuministros-codes/internal/usecase/auth"
	"multisuministros-codes/internal/usecase/coderequest"
	"multisuministros-codes/internal/usecase/export"
	"multisuministros-codes/internal/usecase/notification"
	"multisuministros-codes/internal/usecase/setting"
	"multisuministros-codes/internal/usecase/similarity"
	"multisuministros-codes/pkg/id"
	"multisuministros-codes/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbinfra.OpenGorm(cfg.DBDriver, cfg.DSN(), dbinfra.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := dbinfra.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()

	tx := gormrepo.NewGormUoW(db)
	products := gormrepo.NewProductRepository(db)
	signer := session.NewSigner(cfg.JWTSecret, cfg.JWTTTL())

	authUC := auth.NewUsecase(gormrepo.NewUserRepository(db), tx, signer)
	settingUC := setting.NewUsecase(gormrepo.NewSettingRepository(db))
	if err := settingUC.Seed(ctx); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	if cfg.AdminPassword != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		if created {
			log.Printf("created admin account %q", cfg.AdminUsername)
		}
	}

	var idemp echo.MiddlewareFunc
	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		idemp = middleware.IdempotencyMiddleware(rdb, cfg.IdempTTL())
	} else {
		log.Printf("REDIS_ADDR not set; Idempotency-Key headers are ignored")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.New}),
		echomw.Logger(),
		echomw.Recover(),
		echomw.CORS(),
		middleware.SessionMiddleware(signer),
	)

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:        httpadp.NewHandler(sqlDB),
		Auth:          httpadp.NewAuthHandler(authUC),
		Requests:      httpadp.NewRequestHandler(coderequest.NewUsecase(gormrepo.NewRequestRepository(db), tx)),
		Products:      httpadp.NewProductHandler(similarity.NewUsecase(products), export.NewUsecase(products)),
		Notifications: httpadp.NewNotificationHandler(notification.NewUsecase(gormrepo.NewNotificationRepository(db))),
		Settings:      httpadp.NewSettingHandler(settingUC),
	}, idemp)

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
