package services

import (
	"context"
	"fmt"

	"eventbooking/internal/domain"
)

type adminService struct {
	repo   domain.AdminRepository
	hasher domain.PasswordHasher
}

// NewAdminService creates an AdminService backed by repo.
func NewAdminService(repo domain.AdminRepository, hasher domain.PasswordHasher) domain.AdminService {
	return &adminService{repo: repo, hasher: hasher}
}

func (s *adminService) Create(ctx context.Context, admin *domain.Admin, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	if err := s.repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *adminService) List(ctx context.Context) ([]*domain.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *adminService) GetByID(ctx context.Context, id int) (*domain.Admin, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, localNotFound(err, domain.EntityAdmin, id)
	}
	return admin, nil
}

func (s *adminService) Update(ctx context.Context, admin *domain.Admin, password string) error {
	if err := s.mustExist(ctx, admin.ID); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	if err := s.repo.Update(ctx, admin); err != nil {
		return localNotFound(err, domain.EntityAdmin, admin.ID)
	}
	return nil
}

func (s *adminService) Delete(ctx context.Context, id int) (string, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", localNotFound(err, domain.EntityAdmin, id)
	}
	return "Admin deleted successfully", nil
}

func (s *adminService) mustExist(ctx context.Context, id int) error {
	ok, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if !ok {
		return domain.NotFound(domain.EntityAdmin, id)
	}
	return nil
}
