package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventbooking/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.Name, a.Email, a.PasswordHash).Scan(&a.ID)
}

func (r *adminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM admins
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	admins := make([]*domain.Admin, 0)
	for rows.Next() {
		a := &domain.Admin{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *adminRepository) GetByID(ctx context.Context, id int) (*domain.Admin, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM admins
		WHERE id = $1
	`
	a := &domain.Admin{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return existsByID(ctx, r.DB, "admins", id)
}

func (r *adminRepository) Update(ctx context.Context, a *domain.Admin) error {
	query := `
		UPDATE admins
		SET name = $1, email = $2, password_hash = $3
		WHERE id = $4
	`
	return execAffecting(ctx, r.DB, query, a.Name, a.Email, a.PasswordHash, a.ID)
}

func (r *adminRepository) Delete(ctx context.Context, id int) error {
	return execAffecting(ctx, r.DB, `DELETE FROM admins WHERE id = $1`, id)
}
