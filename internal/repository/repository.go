// Package repository holds all data access for the service. Every statement
// goes through the db wrapper with positional parameters.
package repository

import (
	"context"

	"github.com/Balraaj27/lawcrusade/internal/db"
	"github.com/Balraaj27/lawcrusade/internal/model"
)

type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Page is offset-based pagination: offset = (page-1)*limit.
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func (s *Store) CreateAdmin(ctx context.Context, admin model.Admin) (model.Admin, error) {
	var created model.Admin
	err := s.db.QueryRow(ctx, `
		INSERT INTO admins (id, email, password, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, created_at
	`, admin.ID, admin.Email, admin.PasswordHash, admin.Name).Scan(
		&created.ID,
		&created.Email,
		&created.Name,
		&created.CreatedAt,
	)
	return created, err
}

// GetAdminByEmail returns the full row including the password hash; it exists
// for credential checks only. Everything else uses GetAdminByID.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (model.Admin, error) {
	var admin model.Admin
	err := s.db.QueryRow(ctx, `
		SELECT id, email, password, name, created_at
		FROM admins
		WHERE email = $1
	`, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
	)
	return admin, err
}

func (s *Store) GetAdminByID(ctx context.Context, id string) (model.Admin, error) {
	var admin model.Admin
	err := s.db.QueryRow(ctx, `
		SELECT id, email, name, created_at
		FROM admins
		WHERE id = $1
	`, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.CreatedAt,
	)
	return admin, err
}
