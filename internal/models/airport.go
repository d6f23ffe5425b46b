package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Airport struct {
	bun.BaseModel `bun:"table:airports,alias:airport"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	Name           string    `bun:"name,notnull" json:"name"`
	ClosestBigCity string    `bun:"closest_big_city,notnull" json:"closest_big_city"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

type AirportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}
