package userservice

import (
	"context"
	"database/sql"
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{m: NewUserModel(db)}
}

// ListUsers returns every user ordered by username.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	return s.m.list(ctx)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.m.getByUsername(ctx, username)
}
