package models

import "github.com/uptrace/bun"

type Crew struct {
	bun.BaseModel `bun:"table:crews,alias:crew"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	FirstName string `bun:"first_name,notnull" json:"first_name"`
	LastName  string `bun:"last_name,notnull" json:"last_name"`
}

func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CrewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FlightCrew is the flight<->crew join table.
type FlightCrew struct {
	bun.BaseModel `bun:"table:flight_crews,alias:flight_crew"`

	FlightID int64   `bun:"flight_id,pk"`
	Flight   *Flight `bun:"rel:belongs-to,join:flight_id=id"`
	CrewID   int64   `bun:"crew_id,pk"`
	Crew     *Crew   `bun:"rel:belongs-to,join:crew_id=id"`
}
