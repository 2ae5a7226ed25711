// Command admin-service owns the admins table and fronts event administration over the peers.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"eventbooking/config"
	_ "eventbooking/docs"
	"eventbooking/internal/adapters/auth"
	"eventbooking/internal/adapters/cache"
	"eventbooking/internal/adapters/peer"
	"eventbooking/internal/bootstrap"
	httpdelivery "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository/postgres"
	"eventbooking/internal/server"
	"eventbooking/internal/services"
)

func main() {
	cfg, err := config.Load(config.AdminService)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := bootstrap.Logger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := bootstrap.Database(ctx, cfg, postgres.AdminsTable)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	// The user profile list is cached only when Redis is configured.
	var profileCache domain.Cache
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		profileCache = cache.NewRedisCache(rdb, "admin:")
	}

	var guard httpdelivery.Guard
	if cfg.JWTSecret != "" {
		guard = middleware.RequireRole(auth.NewJWTVerifier(cfg.JWTSecret), logger, domain.AdminRole)
	} else {
		logger.Warn("JWT_SECRET not set, admin routes are unauthenticated")
	}

	httpClient := bootstrap.PeerHTTPClient(cfg)
	eventAdminService := services.NewEventAdminService(
		peer.NewEventClient(cfg.EventServiceURL, httpClient),
		peer.NewBookingClient(cfg.BookingServiceURL, httpClient),
		peer.NewUserServiceClient(cfg.UserServiceURL, httpClient),
		profileCache,
		cfg.CacheTTL,
		logger,
	)
	adminService := services.NewAdminService(postgres.NewAdminRepository(db), auth.NewBcryptHasher(cfg.BcryptCost))

	mux := httpdelivery.NewAdminRouter(
		controllers.NewAdminController(logger, adminService),
		controllers.NewEventAdminController(logger, eventAdminService),
		guard,
	)
	handler := httpdelivery.WithMiddleware(mux, logger, cfg.CORSAllowedOrigins)
	if err := server.Run(ctx, cfg.Addr(), handler, cfg.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
