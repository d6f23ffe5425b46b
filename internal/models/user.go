package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the account entity orders belong to. Staff users may write
// catalog resources; everyone else is read-only there.
type User struct {
	bun.BaseModel `bun:"table:users,alias:user"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Email     string    `bun:"email,notnull,unique" json:"email"`
	Password  string    `bun:"password,notnull" json:"-"`
	IsStaff   bool      `bun:"is_staff,notnull,default:false" json:"is_staff"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Access string `json:"access"`
}
