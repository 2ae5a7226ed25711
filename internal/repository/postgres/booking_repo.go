package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventbooking/internal/domain"
)

const bookingColumns = `id, user_id, user_name, event_id, event_name, date, location, venue`

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, user_name, event_id, event_name, date, location, venue)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		b.UserID, b.UserName, b.EventID, b.EventName, b.Date, b.Location, b.Venue,
	).Scan(&b.ID)
}

func (r *bookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.UserName, &b.EventID, &b.EventName, &b.Date, &b.Location, &b.Venue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return existsByID(ctx, r.DB, "bookings", id)
}

func (r *bookingRepository) ListByUserID(ctx context.Context, userID int) ([]*domain.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *bookingRepository) Delete(ctx context.Context, id int) error {
	return execAffecting(ctx, r.DB, `DELETE FROM bookings WHERE id = $1`, id)
}

func (r *bookingRepository) DeleteByEventID(ctx context.Context, eventID int) (int64, error) {
	return r.deleteWhere(ctx, `DELETE FROM bookings WHERE event_id = $1`, eventID)
}

func (r *bookingRepository) DeleteByUserID(ctx context.Context, userID int) (int64, error) {
	return r.deleteWhere(ctx, `DELETE FROM bookings WHERE user_id = $1`, userID)
}

func (r *bookingRepository) DeleteByUserAndEvent(ctx context.Context, userID, eventID int) (int64, error) {
	return r.deleteWhere(ctx, `DELETE FROM bookings WHERE user_id = $1 AND event_id = $2`, userID, eventID)
}

func (r *bookingRepository) deleteWhere(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.UserName, &b.EventID, &b.EventName, &b.Date, &b.Location, &b.Venue); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
