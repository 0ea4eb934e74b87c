package query

import (
	"testing"
	"time"

	"swarmscraper/pkg/foursquare"
)

func TestClassifyDining(t *testing.T) {
	tests := []struct {
		category string
		want     DiningType
		ok       bool
	}{
		{"Starbucks Coffee Shop", DiningCoffee, true},
		{"Coffee Shop", DiningCoffee, true},
		{"Fast Food Restaurant", DiningFastFood, true},
		{"Brewery", DiningBrewery, true},
		{"Bakery", DiningBakery, true},
		{"Dive Bar", DiningBar, true},
		{"Gastropub", DiningBar, true},
		{"Sushi Restaurant", DiningRestaurant, true},
		{"Barbecue Joint", DiningRestaurant, true},
		{"Barbershop", "", false},
		{"Used Car Dealership", "", false},
		{"Park", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got, ok := ClassifyDining(tt.category)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ClassifyDining(%q) = %q, %v; want %q, %v", tt.category, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseDiningType(t *testing.T) {
	if _, err := ParseDiningType("coffee"); err != nil {
		t.Errorf("Expected coffee to parse: %v", err)
	}
	if _, err := ParseDiningType("karaoke"); err == nil {
		t.Error("Expected an unknown type to be rejected")
	}
}

func diningEngine() *Engine {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
	col := &foursquare.Collection{Checkins: []foursquare.CheckIn{
		checkin("d1", day(2024, 3, 10), 0, "Ritual", "v-r", "Coffee Shop", "San Francisco"),
		checkin("d2", day(2024, 3, 8), 0, "Sightglass", "v-s", "Coffee Shop", "San Francisco"),
		checkin("d3", day(2024, 3, 4), 0, "Zeitgeist", "v-z", "Dive Bar", "San Francisco"),
		checkin("d4", day(2024, 2, 1), 0, "Jiffy Lube", "v-j", "Automotive Shop", "Oakland"),
		checkin("d5", day(2023, 12, 25), 0, "State Bird", "v-sb", "New American Restaurant", "San Francisco"),
	}}
	return NewEngine(col)
}

func TestDiningBreakdown(t *testing.T) {
	e := diningEngine()

	counts, err := e.DiningBreakdown(Filter{})
	if err != nil {
		t.Fatal(err)
	}

	want := []DiningCount{
		{DiningCoffee, 2},
		{DiningBar, 1},
		{DiningRestaurant, 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d dining types, got %d: %v", len(want), len(counts), counts)
	}
	for i, w := range want {
		if counts[i] != w {
			t.Errorf("Entry %d: expected %+v, got %+v", i, w, counts[i])
		}
	}
}

func TestDiningCheckinsByType(t *testing.T) {
	e := diningEngine()

	records, err := e.DiningCheckins(Filter{}, DiningCoffee, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 coffee check-ins, got %d", len(records))
	}
	if records[0].ID != "d1" || records[1].ID != "d2" {
		t.Errorf("Expected collection order preserved, got %v, %v", records[0].ID, records[1].ID)
	}
}

func TestDiningExcludesUnmatched(t *testing.T) {
	e := diningEngine()

	records, err := e.DiningCheckins(Filter{}, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range records {
		if r.ID == "d4" {
			t.Error("Expected the automotive check-in to be excluded from dining views")
		}
	}
	if len(records) != 4 {
		t.Errorf("Expected 4 dining check-ins, got %d", len(records))
	}
}

func TestRecentDining(t *testing.T) {
	e := diningEngine()
	e.now = func() time.Time {
		return time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	}

	records, err := e.RecentDining(7, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	// d1 and d2 fall inside the trailing week, d3 does not
	if len(records) != 2 {
		t.Fatalf("Expected 2 recent dining check-ins, got %d", len(records))
	}

	if _, err := e.RecentDining(0, "", 0); err == nil {
		t.Error("Expected zero days to be rejected")
	}
}

func TestDiningDateRange(t *testing.T) {
	e := diningEngine()

	from, _ := ParseDate("2023-12-01")
	to, _ := ParseDate("2023-12-31")
	records, err := e.DiningCheckins(Filter{From: from, To: to}, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != "d5" {
		t.Errorf("Expected only the December restaurant visit, got %v", records)
	}
}
