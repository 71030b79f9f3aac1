package userservice

import (
	"database/sql"
)

type UserService struct {
	m *UserModel
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
