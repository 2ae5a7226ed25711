// Command booking-service owns the bookings table and the registration workflow.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"eventbooking/config"
	_ "eventbooking/docs"
	"eventbooking/internal/adapters/peer"
	"eventbooking/internal/bootstrap"
	httpdelivery "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/repository/postgres"
	"eventbooking/internal/server"
	"eventbooking/internal/services"
)

func main() {
	cfg, err := config.Load(config.BookingService)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := bootstrap.Logger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := bootstrap.Database(ctx, cfg, postgres.BookingsTable)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	httpClient := bootstrap.PeerHTTPClient(cfg)
	users := peer.NewSecurityServiceClient(cfg.SecurityServiceURL, httpClient)
	events := peer.NewEventClient(cfg.EventServiceURL, httpClient)
	bookingService := services.NewBookingService(postgres.NewBookingRepository(db), users, events, logger)

	mux := httpdelivery.NewBookingRouter(controllers.NewBookingController(logger, bookingService))
	handler := httpdelivery.WithMiddleware(mux, logger, cfg.CORSAllowedOrigins)
	if err := server.Run(ctx, cfg.Addr(), handler, cfg.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
