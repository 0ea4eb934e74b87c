package query

import (
	"time"

	"swarmscraper/pkg/foursquare"
)

// Record is a check-in projected into the fields queries actually touch.
// Time is the local wall-clock time derived from the timezone offset;
// HasTime is false when the raw check-in carried no timestamp.
type Record struct {
	ID            string
	Time          time.Time
	HasTime       bool
	Venue         string
	VenueID       string
	Category      string
	CategoryShort string
	Address       string
	City          string
	State         string
	Country       string
	Neighborhood  string
	Shout         string
	Type          string
}

func project(c foursquare.CheckIn) Record {
	r := Record{
		ID:    c.ID,
		Venue: c.VenueName(),
		Shout: c.Shout,
		Type:  c.Type,
	}
	if local, ok := c.LocalTime(); ok {
		r.Time = local
		r.HasTime = true
	}
	if cat, ok := c.PrimaryCategory(); ok {
		r.Category = cat.Name
		r.CategoryShort = cat.ShortName
	}
	if c.Venue != nil {
		r.VenueID = c.Venue.ID
	}
	loc := c.VenueLocation()
	r.Address = loc.Address
	r.City = loc.City
	r.State = loc.State
	r.Country = loc.CC
	r.Neighborhood = loc.Neighborhood
	return r
}
