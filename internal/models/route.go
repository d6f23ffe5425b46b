package models

import "github.com/uptrace/bun"

// Route is a directed source-destination airport pair, reusable across
// flights. Source and destination may be the same airport.
type Route struct {
	bun.BaseModel `bun:"table:routes,alias:route"`

	ID            int64 `bun:"id,pk,autoincrement" json:"id"`
	SourceID      int64 `bun:"source_id,notnull" json:"source"`
	DestinationID int64 `bun:"destination_id,notnull" json:"destination"`
	Distance      int   `bun:"distance,notnull" json:"distance"`

	Source      *Airport `bun:"rel:belongs-to,join:source_id=id" json:"-"`
	Destination *Airport `bun:"rel:belongs-to,join:destination_id=id" json:"-"`
}

type RouteRequest struct {
	SourceID      int64 `json:"source"`
	DestinationID int64 `json:"destination"`
	Distance      int   `json:"distance"`
}

func (r RouteRequest) Validate() map[string]string {
	fields := map[string]string{}
	if r.SourceID == 0 {
		fields["source"] = "this field is required"
	}
	if r.DestinationID == 0 {
		fields["destination"] = "this field is required"
	}
	if r.Distance < 1 {
		fields["distance"] = "must be greater than or equal to 1"
	}
	return fields
}

// RouteList is the list representation: airport names instead of ids.
type RouteList struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type RouteDetail struct {
	ID          int64   `json:"id"`
	Source      Airport `json:"source"`
	Destination Airport `json:"destination"`
	Distance    int     `json:"distance"`
}

func (r *Route) ToList() RouteList {
	item := RouteList{ID: r.ID, Distance: r.Distance}
	if r.Source != nil {
		item.Source = r.Source.Name
	}
	if r.Destination != nil {
		item.Destination = r.Destination.Name
	}
	return item
}

func (r *Route) ToDetail() RouteDetail {
	detail := RouteDetail{ID: r.ID, Distance: r.Distance}
	if r.Source != nil {
		detail.Source = *r.Source
	}
	if r.Destination != nil {
		detail.Destination = *r.Destination
	}
	return detail
}
