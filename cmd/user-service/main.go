// Command user-service owns the users table and the user-facing event and booking operations.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"eventbooking/config"
	_ "eventbooking/docs"
	"eventbooking/internal/adapters/auth"
	"eventbooking/internal/adapters/peer"
	"eventbooking/internal/bootstrap"
	httpdelivery "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/repository/postgres"
	"eventbooking/internal/server"
	"eventbooking/internal/services"
)

func main() {
	cfg, err := config.Load(config.UserService)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := bootstrap.Logger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := bootstrap.Database(ctx, cfg, postgres.UsersTable)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	emails, err := bootstrap.EmailService(cfg, logger)
	if err != nil {
		logger.Fatal("email", zap.Error(err))
	}

	httpClient := bootstrap.PeerHTTPClient(cfg)
	userService := services.NewUserService(
		postgres.NewUserRepository(db),
		auth.NewBcryptHasher(cfg.BcryptCost),
		peer.NewEventClient(cfg.EventServiceURL, httpClient),
		peer.NewBookingClient(cfg.BookingServiceURL, httpClient),
		emails,
		logger,
	)

	mux := httpdelivery.NewUserRouter(controllers.NewUserController(logger, userService))
	handler := httpdelivery.WithMiddleware(mux, logger, cfg.CORSAllowedOrigins)
	if err := server.Run(ctx, cfg.Addr(), handler, cfg.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
