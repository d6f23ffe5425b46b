package qr

import (
	"encoding/base64"
	"fmt"

	"flight-service/internal/models"

	"github.com/skip2/go-qrcode"
)

// Generator renders boarding QR codes for booked tickets.
type Generator struct {
	size int
}

func NewGenerator() *Generator {
	return &Generator{size: 256}
}

// ForTicket encodes the ticket claim into a PNG QR code.
func (g *Generator) ForTicket(ticket models.Ticket) ([]byte, error) {
	payload := fmt.Sprintf("ticket:%d:flight:%d:row:%d:seat:%d",
		ticket.ID, ticket.FlightID, ticket.Row, ticket.Seat)
	return qrcode.Encode(payload, qrcode.Medium, g.size)
}

// ForTicketBase64 returns the PNG base64-encoded for embedding in JSON
// responses.
func (g *Generator) ForTicketBase64(ticket models.Ticket) (string, error) {
	png, err := g.ForTicket(ticket)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
