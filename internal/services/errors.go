package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

// localNotFound turns a store miss into the tagged not-found for entity/id.
// Other errors pass through unchanged.
func localNotFound(err error, entity domain.Entity, id int) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(entity, id)
	}
	return err
}

// remoteNotFound collapses any failed peer lookup into the tagged not-found.
// Failures other than a plain miss are logged so the cause stays visible.
// err may be nil when the peer answered with an empty result.
func remoteNotFound(logger *zap.Logger, err error, nf *domain.NotFoundError) error {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("peer lookup failed", zap.String("entity", string(nf.Entity)), zap.String(nf.Field, nf.Value), zap.Error(err))
	}
	return nf
}

// bestEffort runs fn after the primary action has committed. It runs on a
// context that survives the caller's cancellation and only logs its failure.
func bestEffort(ctx context.Context, logger *zap.Logger, op string, fn func(context.Context) error, fields ...zap.Field) {
	if err := fn(context.WithoutCancel(ctx)); err != nil {
		logger.Warn(op+" failed", append(fields, zap.Error(err))...)
	}
}
