package foursquare

import (
	"time"
)

// CheckIn is a raw check-in object as returned by the history search API.
// Only the identifier and creation timestamp are guaranteed; every nested
// structure may be absent and consumers must degrade to empty values.
type CheckIn struct {
	ID             string  `json:"id"`
	CreatedAt      int64   `json:"createdAt"`
	TimeZoneOffset int     `json:"timeZoneOffset"`
	Type           string  `json:"type,omitempty"`
	Shout          string  `json:"shout,omitempty"`
	CanonicalURL   string  `json:"canonicalUrl,omitempty"`
	Venue          *Venue  `json:"venue,omitempty"`
	Photos         *Photos `json:"photos,omitempty"`
}

// Venue is a place entity attached to a check-in
type Venue struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	URL        string      `json:"url,omitempty"`
	Categories []Category  `json:"categories,omitempty"`
	Location   *Location   `json:"location,omitempty"`
	Stats      *VenueStats `json:"stats,omitempty"`
}

// Category classifies a venue; at most one category carries the primary flag
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Primary   bool   `json:"primary"`
}

// Location holds a venue's address fields and coordinates. Lat/Lng are
// pointers so a missing coordinate renders as empty rather than 0,0.
type Location struct {
	Address      string   `json:"address,omitempty"`
	CrossStreet  string   `json:"crossStreet,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Country      string   `json:"country,omitempty"`
	CC           string   `json:"cc,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// VenueStats holds the venue popularity counters
type VenueStats struct {
	CheckinsCount int `json:"checkinsCount"`
	UsersCount    int `json:"usersCount"`
	TipCount      int `json:"tipCount"`
}

// Photos holds photo references attached to a check-in
type Photos struct {
	Count int     `json:"count"`
	Items []Photo `json:"items,omitempty"`
}

// Photo is a single photo reference; the full URL is prefix + size + suffix
type Photo struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// UTCTime returns the check-in creation time in UTC. The second return is
// false when the timestamp is absent.
func (c *CheckIn) UTCTime() (time.Time, bool) {
	if c.CreatedAt == 0 {
		return time.Time{}, false
	}
	return time.Unix(c.CreatedAt, 0).UTC(), true
}

// LocalTime returns the creation time shifted by the venue's timezone offset
// (minutes). The result is a wall-clock reading carried in UTC.
func (c *CheckIn) LocalTime() (time.Time, bool) {
	utc, ok := c.UTCTime()
	if !ok {
		return time.Time{}, false
	}
	return utc.Add(time.Duration(c.TimeZoneOffset) * time.Minute), true
}

// PrimaryCategory returns the category flagged primary, falling back to the
// first listed category. The second return is false when the venue has no
// categories at all.
func (c *CheckIn) PrimaryCategory() (Category, bool) {
	if c.Venue == nil || len(c.Venue.Categories) == 0 {
		return Category{}, false
	}
	for _, cat := range c.Venue.Categories {
		if cat.Primary {
			return cat, true
		}
	}
	return c.Venue.Categories[0], true
}

// VenueName returns the venue name or empty when the venue is absent
func (c *CheckIn) VenueName() string {
	if c.Venue == nil {
		return ""
	}
	return c.Venue.Name
}

// VenueLocation returns the venue location, or a zero Location when the
// venue or its location is absent
func (c *CheckIn) VenueLocation() Location {
	if c.Venue == nil || c.Venue.Location == nil {
		return Location{}
	}
	return *c.Venue.Location
}

// PhotoURL assembles the original-size URL of the first attached photo
func (c *CheckIn) PhotoURL() string {
	if c.Photos == nil || len(c.Photos.Items) == 0 {
		return ""
	}
	p := c.Photos.Items[0]
	return p.Prefix + "original" + p.Suffix
}

// Collection is a full download of a user's check-in history. It is created
// wholesale by the fetcher and read-only for all downstream consumers; a new
// download fully replaces the prior collection.
type Collection struct {
	DownloadedAt  time.Time `json:"downloaded_at"`
	UserID        string    `json:"user_id"`
	TotalCheckins int       `json:"total_checkins"`
	Checkins      []CheckIn `json:"checkins"`
}

// Summary is a lightweight projection of a check-in for fast scanning
// without re-parsing nested structures
type Summary struct {
	ID            string `json:"id"`
	CreatedAt     int64  `json:"createdAt"`
	Date          string `json:"date"`
	VenueName     string `json:"venue_name"`
	VenueCategory string `json:"venue_category"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Shout         string `json:"shout"`
}

// Summarize projects a check-in into its summary form
func Summarize(c CheckIn) Summary {
	s := Summary{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Shout:     c.Shout,
		VenueName: c.VenueName(),
	}
	if local, ok := c.LocalTime(); ok {
		s.Date = local.Format("2006-01-02T15:04:05")
	}
	if cat, ok := c.PrimaryCategory(); ok {
		s.VenueCategory = cat.Name
	}
	loc := c.VenueLocation()
	s.City = loc.City
	s.State = loc.State
	s.Country = loc.CC
	return s
}

// Summaries derives the summary sequence for the whole collection,
// preserving order
func (col *Collection) Summaries() []Summary {
	out := make([]Summary, 0, len(col.Checkins))
	for _, c := range col.Checkins {
		out = append(out, Summarize(c))
	}
	return out
}

// Meta is the status envelope every API response carries
type Meta struct {
	Code        int    `json:"code"`
	ErrorType   string `json:"errorType,omitempty"`
	ErrorDetail string `json:"errorDetail,omitempty"`
}

// CheckinGroup is a single page of history results with the endpoint's
// declared total count
type CheckinGroup struct {
	Count int       `json:"count"`
	Items []CheckIn `json:"items"`
}

// HistoryResponse is the full history search response envelope
type HistoryResponse struct {
	Meta     Meta `json:"meta"`
	Response struct {
		Checkins CheckinGroup `json:"checkins"`
	} `json:"response"`
}
