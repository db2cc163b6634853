package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RolePartner = 2
	RoleClient  = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	PartnerID    *string    `json:"partner_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserPartnerID *string
	jwt.RegisteredClaims
}

func IsValidRole(roleID int) bool {
	return roleID == RoleAdmin || roleID == RolePartner || roleID == RoleClient
}
