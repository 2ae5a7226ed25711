package domain

import (
	"context"
)

// Admin is an administrator account owned by the admin service.
// swagger:model Admin
type Admin struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// AdminRepository defines the interface for admin storage
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	List(ctx context.Context) ([]*Admin, error)
	GetByID(ctx context.Context, id int) (*Admin, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, admin *Admin) error
	Delete(ctx context.Context, id int) error
}

// AdminService defines admin account CRUD.
type AdminService interface {
	Create(ctx context.Context, admin *Admin, password string) error
	List(ctx context.Context) ([]*Admin, error)
	GetByID(ctx context.Context, id int) (*Admin, error)
	Update(ctx context.Context, admin *Admin, password string) error
	Delete(ctx context.Context, id int) (string, error)
}
