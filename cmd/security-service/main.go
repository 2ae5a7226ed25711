// Command security-service handles sign-up, authentication and token-guarded event administration.
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
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository/postgres"
	"eventbooking/internal/server"
	"eventbooking/internal/services"
)

// @title Event Booking API
// @version 1.0
// @description Event, booking, user, security and admin services. Every response uses the {data, error} envelope.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by POST /auth/authenticate.
func main() {
	cfg, err := config.Load(config.SecurityService)
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

	userRepo := postgres.NewUserRepository(db)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	httpClient := bootstrap.PeerHTTPClient(cfg)
	events := peer.NewEventClient(cfg.EventServiceURL, httpClient)
	bookings := peer.NewBookingClient(cfg.BookingServiceURL, httpClient)
	users := peer.NewSecurityServiceClient(cfg.SecurityServiceURL, httpClient)

	authService := services.NewAuthService(userRepo, hasher, auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry, emails, logger)
	userService := services.NewUserService(userRepo, hasher, events, bookings, emails, logger)
	eventAdminService := services.NewEventAdminService(events, bookings, users, nil, 0, logger)

	mux := httpdelivery.NewSecurityRouter(
		controllers.NewAuthController(logger, authService),
		controllers.NewUserController(logger, userService),
		controllers.NewEventAdminController(logger, eventAdminService),
		middleware.RequireRole(verifier, logger, domain.AdminRole),
	)
	handler := httpdelivery.WithMiddleware(mux, logger, cfg.CORSAllowedOrigins)
	if err := server.Run(ctx, cfg.Addr(), handler, cfg.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
