package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventbooking/internal/domain"
)

const eventColumns = `id, name, date, location, venue, description`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, date, location, venue, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Date, e.Location, e.Venue, e.Description).Scan(&e.ID)
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY id`)
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.Venue, &e.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return existsByID(ctx, r.DB, "events", id)
}

// SearchByName matches keyword as a case-insensitive substring of the name.
func (r *eventRepository) SearchByName(ctx context.Context, keyword string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return r.query(ctx, query, escapeLike(keyword))
}

func (r *eventRepository) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE location = $1
		ORDER BY id
	`
	return r.query(ctx, query, location)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, date = $2, location = $3, venue = $4, description = $5
		WHERE id = $6
	`
	return execAffecting(ctx, r.DB, query, e.Name, e.Date, e.Location, e.Venue, e.Description, e.ID)
}

func (r *eventRepository) Delete(ctx context.Context, id int) error {
	return execAffecting(ctx, r.DB, `DELETE FROM events WHERE id = $1`, id)
}

func (r *eventRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.Venue, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
