package models

import (
	"fmt"

	"flight-service/internal/apperrors"

	"github.com/uptrace/bun"
)

// Ticket is a claim on one specific seat of one flight. The database
// enforces uniqueness of (flight_id, row, seat).
type Ticket struct {
	bun.BaseModel `bun:"table:tickets,alias:ticket"`

	ID       int64 `bun:"id,pk,autoincrement" json:"id"`
	Row      int   `bun:"row,notnull,unique:tickets_flight_row_seat" json:"row"`
	Seat     int   `bun:"seat,notnull,unique:tickets_flight_row_seat" json:"seat"`
	FlightID int64 `bun:"flight_id,notnull,unique:tickets_flight_row_seat" json:"flight"`
	OrderID  int64 `bun:"order_id,notnull" json:"order"`

	Flight *Flight `bun:"rel:belongs-to,join:flight_id=id" json:"-"`
	Order  *Order  `bun:"rel:belongs-to,join:order_id=id" json:"-"`
}

// ValidateTicket checks row and seat against the airplane assigned to the
// ticket's flight. It is the single seat-bounds rule, called both at the
// request boundary and inside the booking transaction before the insert.
func ValidateTicket(row, seat int, airplane *Airplane) error {
	if row < 1 || row > airplane.Rows {
		return apperrors.NewValidation(
			fmt.Sprintf("Row should be in range (1, %d), not %d", airplane.Rows, row))
	}
	if seat < 1 || seat > airplane.Seats {
		return apperrors.NewValidation(
			fmt.Sprintf("Seat should be in range (1, %d), not %d", airplane.Seats, seat))
	}
	return nil
}

// TicketSpec is one requested seat inside an order creation request.
type TicketSpec struct {
	FlightID int64 `json:"flight"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

// TicketList is the ticket representation with its flight summary nested.
type TicketList struct {
	ID     int64          `json:"id"`
	Row    int            `json:"row"`
	Seat   int            `json:"seat"`
	Flight *FlightSummary `json:"flight,omitempty"`
	QRCode string         `json:"qr_code,omitempty"`
}

func (t *Ticket) ToList() TicketList {
	item := TicketList{ID: t.ID, Row: t.Row, Seat: t.Seat}
	if t.Flight != nil {
		summary := t.Flight.ToSummary()
		item.Flight = &summary
	}
	return item
}
