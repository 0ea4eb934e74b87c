package export

import (
	"strconv"

	"swarmscraper/pkg/foursquare"
)

// Header is the fixed 24-column layout of the tabular export. Downstream
// consumers key on these names; the order never changes.
var Header = []string{
	"id", "date_utc", "date_local", "year", "month", "day_of_week",
	"venue_name", "category", "category_short",
	"address", "cross_street", "city", "state", "postal_code",
	"country", "country_code", "neighborhood",
	"lat", "lng", "shout", "type", "photo_url", "venue_url", "foursquare_url",
}

const timeLayout = "2006-01-02 15:04:05"

// Row is one check-in flattened into the 24-column export shape. Derived
// time fields come from the check-in's local clock; absent nested fields
// flatten to empty strings, never to a dropped row.
type Row struct {
	ID            string
	DateUTC       string
	DateLocal     string
	Year          int
	Month         int
	DayOfWeek     string
	VenueName     string
	Category      string
	CategoryShort string
	Address       string
	CrossStreet   string
	City          string
	State         string
	PostalCode    string
	Country       string
	CountryCode   string
	Neighborhood  string
	Lat           string
	Lng           string
	Shout         string
	Type          string
	PhotoURL      string
	VenueURL      string
	FoursquareURL string
}

// Flatten projects a raw check-in into its export row
func Flatten(c foursquare.CheckIn) Row {
	r := Row{
		ID:            c.ID,
		Shout:         c.Shout,
		Type:          c.Type,
		PhotoURL:      c.PhotoURL(),
		FoursquareURL: c.CanonicalURL,
		VenueName:     c.VenueName(),
	}

	if utc, ok := c.UTCTime(); ok {
		local, _ := c.LocalTime()
		r.DateUTC = utc.Format(timeLayout)
		r.DateLocal = local.Format(timeLayout)
		r.Year = local.Year()
		r.Month = int(local.Month())
		r.DayOfWeek = local.Weekday().String()
	}

	if cat, ok := c.PrimaryCategory(); ok {
		r.Category = cat.Name
		r.CategoryShort = cat.ShortName
	}

	if c.Venue != nil {
		r.VenueURL = c.Venue.URL
	}

	loc := c.VenueLocation()
	r.Address = loc.Address
	r.CrossStreet = loc.CrossStreet
	r.City = loc.City
	r.State = loc.State
	r.PostalCode = loc.PostalCode
	r.Country = loc.Country
	r.CountryCode = loc.CC
	r.Neighborhood = loc.Neighborhood
	if loc.Lat != nil {
		r.Lat = strconv.FormatFloat(*loc.Lat, 'f', -1, 64)
	}
	if loc.Lng != nil {
		r.Lng = strconv.FormatFloat(*loc.Lng, 'f', -1, 64)
	}

	return r
}

// Record renders the row as CSV fields in Header order
func (r Row) Record() []string {
	year, month := "", ""
	if r.Year != 0 {
		year = strconv.Itoa(r.Year)
		month = strconv.Itoa(r.Month)
	}

	return []string{
		r.ID, r.DateUTC, r.DateLocal, year, month, r.DayOfWeek,
		r.VenueName, r.Category, r.CategoryShort,
		r.Address, r.CrossStreet, r.City, r.State, r.PostalCode,
		r.Country, r.CountryCode, r.Neighborhood,
		r.Lat, r.Lng, r.Shout, r.Type, r.PhotoURL, r.VenueURL, r.FoursquareURL,
	}
}
