// Command event-service owns the events table and the booking cascade on event delete.
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
	cfg, err := config.Load(config.EventService)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := bootstrap.Logger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := bootstrap.Database(ctx, cfg, postgres.EventsTable)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	bookings := peer.NewBookingClient(cfg.BookingServiceURL, bootstrap.PeerHTTPClient(cfg))
	eventService := services.NewEventService(postgres.NewEventRepository(db), bookings, logger)

	mux := httpdelivery.NewEventRouter(controllers.NewEventController(logger, eventService))
	handler := httpdelivery.WithMiddleware(mux, logger, cfg.CORSAllowedOrigins)
	if err := server.Run(ctx, cfg.Addr(), handler, cfg.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
