package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Flight is one scheduled departure/arrival instance of a Route flown by a
// specific Airplane. Arrival before departure is not rejected, matching the
// booking rules this service inherited.
type Flight struct {
	bun.BaseModel `bun:"table:flights,alias:flight"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	RouteID       int64     `bun:"route_id,notnull" json:"route"`
	AirplaneID    int64     `bun:"airplane_id,notnull" json:"airplane"`
	DepartureTime time.Time `bun:"departure_time,notnull" json:"departure_time"`
	ArrivalTime   time.Time `bun:"arrival_time,notnull" json:"arrival_time"`

	// Filled by the availability query, never stored.
	TicketsAvailable int `bun:"tickets_available,scanonly" json:"-"`

	Route    *Route    `bun:"rel:belongs-to,join:route_id=id" json:"-"`
	Airplane *Airplane `bun:"rel:belongs-to,join:airplane_id=id" json:"-"`
	Crew     []*Crew   `bun:"m2m:flight_crews,join:Flight=Crew" json:"-"`
	Tickets  []*Ticket `bun:"rel:has-many,join:id=flight_id" json:"-"`
}

type FlightRequest struct {
	RouteID       int64     `json:"route"`
	AirplaneID    int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew"`
}

func (r FlightRequest) Validate() map[string]string {
	fields := map[string]string{}
	if r.RouteID == 0 {
		fields["route"] = "this field is required"
	}
	if r.AirplaneID == 0 {
		fields["airplane"] = "this field is required"
	}
	if r.DepartureTime.IsZero() {
		fields["departure_time"] = "this field is required"
	}
	if r.ArrivalTime.IsZero() {
		fields["arrival_time"] = "this field is required"
	}
	return fields
}

// FlightFilter holds the accepted list query parameters; all are optional
// and combine with AND. Date matches the calendar date of departure_time.
type FlightFilter struct {
	Date        *time.Time
	Source      string
	Destination string
}

type FlightList struct {
	ID               int64     `json:"id"`
	Route            RouteList `json:"route"`
	Airplane         string    `json:"airplane"`
	Crew             []string  `json:"crew"`
	TicketsAvailable int       `json:"tickets_available"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
}

type SeatTaken struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetail struct {
	ID               int64          `json:"id"`
	Route            RouteDetail    `json:"route"`
	Airplane         AirplaneDetail `json:"airplane"`
	Crew             []Crew         `json:"crew"`
	DepartureTime    time.Time      `json:"departure_time"`
	ArrivalTime      time.Time      `json:"arrival_time"`
	TicketsAvailable int            `json:"tickets_available"`
	SeatsTaken       []SeatTaken    `json:"seats_taken"`
}

// FlightSummary is the nested flight representation on tickets.
type FlightSummary struct {
	ID            int64     `json:"id"`
	Route         RouteList `json:"route"`
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

func (f *Flight) ToList() FlightList {
	item := FlightList{
		ID:               f.ID,
		TicketsAvailable: f.TicketsAvailable,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Crew:             []string{},
	}
	if f.Route != nil {
		item.Route = f.Route.ToList()
	}
	if f.Airplane != nil {
		item.Airplane = f.Airplane.Name
	}
	for _, member := range f.Crew {
		item.Crew = append(item.Crew, member.FullName())
	}
	return item
}

func (f *Flight) ToDetail() FlightDetail {
	detail := FlightDetail{
		ID:               f.ID,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		TicketsAvailable: f.TicketsAvailable,
		Crew:             []Crew{},
		SeatsTaken:       []SeatTaken{},
	}
	if f.Route != nil {
		detail.Route = f.Route.ToDetail()
	}
	if f.Airplane != nil {
		detail.Airplane = f.Airplane.ToDetail()
	}
	for _, member := range f.Crew {
		detail.Crew = append(detail.Crew, *member)
	}
	for _, ticket := range f.Tickets {
		detail.SeatsTaken = append(detail.SeatsTaken, SeatTaken{Row: ticket.Row, Seat: ticket.Seat})
	}
	return detail
}

func (f *Flight) ToSummary() FlightSummary {
	summary := FlightSummary{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}
	if f.Route != nil {
		summary.Route = f.Route.ToList()
	}
	if f.Airplane != nil {
		summary.Airplane = f.Airplane.Name
	}
	return summary
}
