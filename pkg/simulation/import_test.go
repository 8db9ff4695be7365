package simulation

import (
	"strings"
	"testing"
	"time"
)

func TestRefMapResolve(t *testing.T) {
	refs := refMap{"p1": "11111111-1111-1111-1111-111111111111"}

	id, err := refs.resolve("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("unexpected id: %q", id)
	}

	_, err = refs.resolve("missing")
	if err == nil {
		t.Fatal("expected error for unknown ref")
	}
	if !strings.Contains(err.Error(), `unresolved ref "missing"`) {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  *time.Time
	}{
		{
			name:  "nil stays nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "utc timestamp",
			input: strPtr("2024-06-01T12:30:00Z"),
			want:  timePtr(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)),
		},
		{
			name:  "offset timestamp",
			input: strPtr("2024-06-01T12:30:00+02:00"),
			want:  timePtr(time.Date(2024, 6, 1, 12, 30, 0, 0, time.FixedZone("", 2*60*60))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timestamp(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("unexpected nil-ness: got %v, want %v", got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Fatalf("unexpected time: got %v, want %v", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestActiveOrDefault(t *testing.T) {
	if !activeOrDefault(nil) {
		t.Fatal("nil should default to active")
	}

	v := false
	if activeOrDefault(&v) {
		t.Fatal("explicit false should stay false")
	}

	v = true
	if !activeOrDefault(&v) {
		t.Fatal("explicit true should stay true")
	}
}

func TestPersonParams(t *testing.T) {
	entry := PersonEntry{
		Ref:         "p1",
		FirstName:   strPtr("Ada"),
		LastName:    strPtr("Lovelace"),
		Aliases:     []string{"AL"},
		DateOfBirth: strPtr("1815-12-10T00:00:00Z"),
		Email:       []string{"ada@example.com"},
		SocialMedia: map[string]string{"x": "@ada"},
		RiskLevel:   strPtr("LOW"),
	}

	params := personParams(entry)

	if params.FirstName == nil || *params.FirstName != "Ada" {
		t.Fatalf("unexpected first name: %v", params.FirstName)
	}
	if params.DateOfBirth == nil || params.DateOfBirth.Year() != 1815 {
		t.Fatalf("unexpected date of birth: %v", params.DateOfBirth)
	}
	if len(params.Email) != 1 || params.Email[0] != "ada@example.com" {
		t.Fatalf("unexpected email: %v", params.Email)
	}
	if params.SocialMedia["x"] != "@ada" {
		t.Fatalf("unexpected social media: %v", params.SocialMedia)
	}
	if params.RiskLevel == nil || *params.RiskLevel != "LOW" {
		t.Fatalf("unexpected risk level: %v", params.RiskLevel)
	}
}

func TestOrganizationParams(t *testing.T) {
	entry := OrganizationEntry{
		Ref:       "o1",
		Name:      "Acme",
		FoundedAt: strPtr("1999-01-01T00:00:00Z"),
		Tags:      []string{"shell"},
	}

	params := organizationParams(entry)

	if params.Name != "Acme" {
		t.Fatalf("unexpected name: %q", params.Name)
	}
	if params.FoundedAt == nil || params.FoundedAt.Year() != 1999 {
		t.Fatalf("unexpected founded at: %v", params.FoundedAt)
	}
	if len(params.Tags) != 1 || params.Tags[0] != "shell" {
		t.Fatalf("unexpected tags: %v", params.Tags)
	}
}

func TestEventParams(t *testing.T) {
	lat, lon := 53.14, 8.21
	entry := EventEntry{
		Ref:             "e1",
		Title:           "Meeting",
		Date:            strPtr("2024-06-01T09:00:00Z"),
		EndDate:         strPtr("2024-06-01T11:00:00Z"),
		Latitude:        &lat,
		Longitude:       &lon,
		EstimatedStatus: strPtr("CONFIRMED"),
	}

	params := eventParams(entry)

	if params.Title != "Meeting" {
		t.Fatalf("unexpected title: %q", params.Title)
	}
	if params.Date == nil || params.EndDate == nil {
		t.Fatal("expected both dates to be set")
	}
	if params.EndDate.Sub(*params.Date) != 2*time.Hour {
		t.Fatalf("unexpected duration: %v", params.EndDate.Sub(*params.Date))
	}
	if params.Latitude == nil || *params.Latitude != 53.14 {
		t.Fatalf("unexpected latitude: %v", params.Latitude)
	}
	if params.EstimatedStatus == nil || *params.EstimatedStatus != "CONFIRMED" {
		t.Fatalf("unexpected status: %v", params.EstimatedStatus)
	}
}
