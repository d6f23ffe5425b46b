package models

import "github.com/uptrace/bun"

type AirplaneType struct {
	bun.BaseModel `bun:"table:airplane_types,alias:airplane_type"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull" json:"name"`
}

type AirplaneTypeRequest struct {
	Name string `json:"name"`
}

type Airplane struct {
	bun.BaseModel `bun:"table:airplanes,alias:airplane"`

	ID             int64  `bun:"id,pk,autoincrement" json:"id"`
	Name           string `bun:"name,notnull" json:"name"`
	Rows           int    `bun:"rows,notnull" json:"rows"`
	Seats          int    `bun:"seats,notnull" json:"seats"`
	AirplaneTypeID int64  `bun:"airplane_type_id,notnull" json:"airplane_type"`

	AirplaneType *AirplaneType `bun:"rel:belongs-to,join:airplane_type_id=id" json:"-"`
}

// Capacity is the total seat count, rows times seats per row.
func (a *Airplane) Capacity() int {
	return a.Rows * a.Seats
}

type AirplaneRequest struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	Seats          int    `json:"seats"`
	AirplaneTypeID int64  `json:"airplane_type"`
}

// Validate applies the field constraints shared by create and update.
func (r AirplaneRequest) Validate() map[string]string {
	fields := map[string]string{}
	if r.Name == "" {
		fields["name"] = "this field is required"
	}
	if r.Rows < 1 {
		fields["rows"] = "must be greater than or equal to 1"
	}
	if r.Seats < 1 {
		fields["seats"] = "must be greater than or equal to 1"
	}
	if r.AirplaneTypeID == 0 {
		fields["airplane_type"] = "this field is required"
	}
	return fields
}

type AirplaneDetail struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	Seats        int    `json:"seats"`
	Capacity     int    `json:"capacity"`
	AirplaneType string `json:"airplane_type"`
}

func (a *Airplane) ToDetail() AirplaneDetail {
	detail := AirplaneDetail{
		ID:       a.ID,
		Name:     a.Name,
		Rows:     a.Rows,
		Seats:    a.Seats,
		Capacity: a.Capacity(),
	}
	if a.AirplaneType != nil {
		detail.AirplaneType = a.AirplaneType.Name
	}
	return detail
}

// AirplaneFilter holds the accepted list query parameters: exact type id
// and case-insensitive name substring, combined with AND.
type AirplaneFilter struct {
	TypeID int64
	Name   string
}
