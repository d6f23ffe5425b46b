package qr_test

import (
	"encoding/base64"
	"testing"

	"flight-service/internal/booking/qr"
	"flight-service/internal/models"
)

func TestForTicketProducesPNG(t *testing.T) {
	gen := qr.NewGenerator()

	png, err := gen.ForTicket(models.Ticket{ID: 1, FlightID: 7, Row: 3, Seat: 2})
	if err != nil {
		t.Fatalf("failed to generate QR code: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("generated QR code is empty")
	}
	// PNG magic bytes.
	if png[0] != 0x89 || png[1] != 'P' || png[2] != 'N' || png[3] != 'G' {
		t.Errorf("expected PNG output, got leading bytes %v", png[:4])
	}
}

func TestForTicketDiffersPerSeat(t *testing.T) {
	gen := qr.NewGenerator()

	first, err := gen.ForTicket(models.Ticket{ID: 1, FlightID: 7, Row: 1, Seat: 1})
	if err != nil {
		t.Fatalf("failed to generate QR code: %v", err)
	}
	second, err := gen.ForTicket(models.Ticket{ID: 2, FlightID: 7, Row: 1, Seat: 2})
	if err != nil {
		t.Fatalf("failed to generate QR code: %v", err)
	}

	if string(first) == string(second) {
		t.Error("different tickets produced identical QR codes")
	}
}

func TestForTicketBase64Decodes(t *testing.T) {
	gen := qr.NewGenerator()

	encoded, err := gen.ForTicketBase64(models.Ticket{ID: 1, FlightID: 7, Row: 3, Seat: 2})
	if err != nil {
		t.Fatalf("failed to generate QR code: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if len(decoded) == 0 {
		t.Error("decoded QR code is empty")
	}
}
