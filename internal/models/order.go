package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Order groups the tickets booked in one transaction under one user.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64     `bun:"user_id,notnull" json:"user"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`

	Tickets []*Ticket `bun:"rel:has-many,join:id=order_id" json:"-"`
}

// OrderRequest is the create payload: a non-empty list of seat claims.
type OrderRequest struct {
	Tickets []TicketSpec `json:"tickets"`
}

type OrderResponse struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Tickets   []TicketList `json:"tickets"`
}

func (o *Order) ToResponse() OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Tickets:   []TicketList{},
	}
	for _, ticket := range o.Tickets {
		resp.Tickets = append(resp.Tickets, ticket.ToList())
	}
	return resp
}
