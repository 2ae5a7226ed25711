// Package bootstrap builds the process-level dependencies every service main needs.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"eventbooking/config"
	"eventbooking/internal/adapters/email"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository/postgres"
	"eventbooking/internal/services"
)

// Logger builds the service logger named after cfg.Service.
func Logger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := config.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.Named(cfg.Service), nil
}

// Database opens the service database and creates the given tables.
func Database(ctx context.Context, cfg *config.Config, ddl ...string) (*sql.DB, error) {
	db, err := postgres.Open(ctx, cfg.DBUrl, postgres.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, db, ddl...); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

// PeerHTTPClient is the client shared by a service's peer clients.
func PeerHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.PeerTimeout}
}

// EmailService builds the mailer selected by EMAIL_PROVIDER and wraps it with the templates.
func EmailService(cfg *config.Config, logger *zap.Logger) (domain.EmailService, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger.Named("email"))
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	return services.NewEmailService(mailer, email.NewTemplateRenderer(), logger.Named("email")), nil
}
