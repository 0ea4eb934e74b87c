package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"swarmscraper/pkg/foursquare"
)

func floatPtr(v float64) *float64 { return &v }

func fullCheckin() foursquare.CheckIn {
	return foursquare.CheckIn{
		ID:             "chk1",
		CreatedAt:      1700000000,
		TimeZoneOffset: -480,
		Type:           "checkin",
		Shout:          "great tacos",
		CanonicalURL:   "https://www.swarmapp.com/checkin/chk1",
		Venue: &foursquare.Venue{
			ID:   "v1",
			Name: "Taqueria Cancun",
			URL:  "http://taqueria.example",
			Categories: []foursquare.Category{
				{Name: "Burrito Place", ShortName: "Burritos"},
				{Name: "Taco Place", ShortName: "Tacos", Primary: true},
			},
			Location: &foursquare.Location{
				Address:      "2288 Mission St",
				CrossStreet:  "at 19th St",
				City:         "San Francisco",
				State:        "CA",
				PostalCode:   "94110",
				Country:      "United States",
				CC:           "US",
				Neighborhood: "Mission",
				Lat:          floatPtr(37.7617),
				Lng:          floatPtr(-122.4194),
			},
		},
		Photos: &foursquare.Photos{
			Count: 1,
			Items: []foursquare.Photo{{Prefix: "https://img.example/", Suffix: "/photo.jpg"}},
		},
	}
}

func TestFlattenFullCheckin(t *testing.T) {
	r := Flatten(fullCheckin())

	if r.ID != "chk1" {
		t.Errorf("Expected id chk1, got %q", r.ID)
	}
	// 1700000000 is 2023-11-14 22:13:20 UTC; at -480 minutes that is 14:13:20
	if r.DateUTC != "2023-11-14 22:13:20" {
		t.Errorf("Unexpected UTC date: %q", r.DateUTC)
	}
	if r.DateLocal != "2023-11-14 14:13:20" {
		t.Errorf("Unexpected local date: %q", r.DateLocal)
	}
	if r.Year != 2023 || r.Month != 11 || r.DayOfWeek != "Tuesday" {
		t.Errorf("Unexpected derived fields: year=%d month=%d dow=%q", r.Year, r.Month, r.DayOfWeek)
	}
	if r.Category != "Taco Place" || r.CategoryShort != "Tacos" {
		t.Errorf("Expected the primary category, got %q / %q", r.Category, r.CategoryShort)
	}
	if r.Lat != "37.7617" || r.Lng != "-122.4194" {
		t.Errorf("Unexpected coordinates: %q / %q", r.Lat, r.Lng)
	}
	if r.PhotoURL != "https://img.example/original/photo.jpg" {
		t.Errorf("Unexpected photo URL: %q", r.PhotoURL)
	}
	if r.Neighborhood != "Mission" || r.CrossStreet != "at 19th St" {
		t.Errorf("Unexpected location fields: %q / %q", r.Neighborhood, r.CrossStreet)
	}
}

func TestFlattenBareCheckin(t *testing.T) {
	r := Flatten(foursquare.CheckIn{ID: "bare"})
	rec := r.Record()

	if len(rec) != len(Header) {
		t.Fatalf("Expected %d fields, got %d", len(Header), len(rec))
	}
	if rec[0] != "bare" {
		t.Errorf("Expected id in column 0, got %q", rec[0])
	}
	for i := 1; i < len(rec); i++ {
		if rec[i] != "" {
			t.Errorf("Expected column %s empty for a bare check-in, got %q", Header[i], rec[i])
		}
	}
}

func TestFlattenLocalYearBoundary(t *testing.T) {
	// 2023-12-31 23:30:00 UTC with a +60 minute offset lands in 2024 locally
	c := foursquare.CheckIn{ID: "nye", CreatedAt: 1704065400, TimeZoneOffset: 60}
	r := Flatten(c)

	if r.Year != 2024 || r.Month != 1 {
		t.Errorf("Expected local 2024-01, got %d-%d", r.Year, r.Month)
	}
	if r.DateUTC != "2023-12-31 23:30:00" {
		t.Errorf("Unexpected UTC date: %q", r.DateUTC)
	}
	if r.DateLocal != "2024-01-01 00:30:00" {
		t.Errorf("Unexpected local date: %q", r.DateLocal)
	}
}

func TestRowsOneRowPerCheckin(t *testing.T) {
	checkins := []foursquare.CheckIn{
		fullCheckin(),
		{ID: "b"},
		{ID: "c", CreatedAt: 1700000100},
	}

	rows := Rows(checkins, Filter{})
	if len(rows) != len(checkins) {
		t.Fatalf("Expected %d rows, got %d", len(checkins), len(rows))
	}
	for i, r := range rows {
		if r.ID != checkins[i].ID {
			t.Errorf("Row %d: expected input order preserved, got id %q", i, r.ID)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	full := Flatten(fullCheckin())

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter matches", Filter{}, true},
		{"year match", Filter{Year: 2023}, true},
		{"year mismatch", Filter{Year: 2019}, false},
		{"city substring case-insensitive", Filter{City: "san fran"}, true},
		{"city mismatch", Filter{City: "tokyo"}, false},
		{"category substring", Filter{Category: "taco"}, true},
		{"category mismatch", Filter{Category: "coffee"}, false},
		{"combined AND", Filter{Year: 2023, City: "Francisco", Category: "Taco"}, true},
		{"combined AND one fails", Filter{Year: 2023, City: "tokyo"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(full); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterUndatedCheckinExcludedByYear(t *testing.T) {
	r := Flatten(foursquare.CheckIn{ID: "undated"})
	if (Filter{Year: 2023}).Match(r) {
		t.Error("Expected an undated check-in to fail a year filter")
	}
	if !(Filter{}).Match(r) {
		t.Error("Expected an undated check-in to pass an empty filter")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkins_export.csv")

	checkins := []foursquare.CheckIn{fullCheckin(), {ID: "b", CreatedAt: 1500000000}}
	n, err := WriteFile(path, checkins, Filter{})
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rows written, got %d", n)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse written CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 records, got %d lines", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(Header, ",") {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][0] != "chk1" || records[2][0] != "b" {
		t.Errorf("Unexpected record order: %v / %v", records[1][0], records[2][0])
	}
}

func TestWriteFileFiltered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filtered.csv")

	checkins := []foursquare.CheckIn{
		fullCheckin(),
		{ID: "b", CreatedAt: 1500000000}, // 2017, no venue
	}

	n, err := WriteFile(path, checkins, Filter{Year: 2023})
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 row after filtering, got %d", n)
	}
}
