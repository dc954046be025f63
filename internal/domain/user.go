package domain

import (
	"time"

	"github.com/google/uuid"
)

type Users struct {
	ID           uuid.UUID `db:"id"`
	UserName     string    `db:"user_name"`
	Email        *string   `db:"email"`
	PasswordHash *string   `db:"password_hash"`
	AuthProvider string    `db:"auth_provider"`
	GoogleID     *string   `db:"google_id"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type UsersTable struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	AuthProvider string
	GoogleID     string
	IsActive     string
	CreatedAt    string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		UserName:     "user_name",
		Email:        "email",
		PasswordHash: "password_hash",
		AuthProvider: "auth_provider",
		GoogleID:     "google_id",
		IsActive:     "is_active",
		CreatedAt:    "created_at",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}
