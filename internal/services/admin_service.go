package services

import (
	"context"
	"slices"
	"strings"

	"fuel-console/internal/models"
	"fuel-console/pkg/apperror"
)

// performedBy is recorded in the backend's audit log for console actions.
const performedBy = "Admin"

type AdminBackend interface {
	ListAdminUsers(ctx context.Context) ([]models.AdminUser, error)
	CreateAdminUser(ctx context.Context, req models.CreateAdminUserRequest) error
	DeleteAdminUser(ctx context.Context, id string) error
	ListAdminLogs(ctx context.Context) ([]models.AdminLog, error)
}

type AdminService struct {
	backend AdminBackend
}

func NewAdminService(backend AdminBackend) *AdminService {
	return &AdminService{backend: backend}
}

type AdminPage struct {
	Users []models.AdminUser `json:"users"`
	Logs  []models.AdminLog  `json:"logs"`
	Roles []string           `json:"roles"`
}

func (s *AdminService) Page(ctx context.Context) (*AdminPage, error) {
	users, err := s.backend.ListAdminUsers(ctx)
	if err != nil {
		return nil, backendError("load users", err)
	}
	logs, err := s.backend.ListAdminLogs(ctx)
	if err != nil {
		return nil, backendError("load audit logs", err)
	}
	return &AdminPage{Users: users, Logs: logs, Roles: models.Roles}, nil
}

func (s *AdminService) CreateUser(ctx context.Context, req models.CreateAdminUserRequest) (*AdminPage, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Role == "" {
		req.Role = "Attendant"
	}
	req.PerformedBy = performedBy

	var v apperror.Validator
	v.Check(req.Username != "", "username", "Username is required")
	v.Check(req.Email != "", "email", "Email is required")
	v.Check(req.Password != "", "password", "Password is required")
	v.Check(slices.Contains(models.Roles, req.Role), "role", "Unknown role")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.backend.CreateAdminUser(ctx, req); err != nil {
		return nil, backendError("create user", err)
	}
	return s.Page(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) (*AdminPage, error) {
	if err := s.backend.DeleteAdminUser(ctx, id); err != nil {
		return nil, backendError("delete user", err)
	}
	return s.Page(ctx)
}
