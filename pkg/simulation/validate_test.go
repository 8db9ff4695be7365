package simulation

import "testing"

func strPtr(s string) *string { return &s }

func TestValidateAcceptsCleanDocument(t *testing.T) {
	p := &Payload{
		People: []PersonEntry{{
			Ref:         "p1",
			FirstName:   strPtr("Ada"),
			DateOfBirth: strPtr("1990-04-01T00:00:00Z"),
			RiskLevel:   strPtr("HIGH"),
		}},
		Organizations: []OrganizationEntry{{Ref: "o1", Name: "Acme"}},
		Events:        []EventEntry{{Ref: "e1", Title: "Meeting"}},
		Relationships: []Relationship{
			PersonToOrg{Person: "p1", Organization: "o1"},
		},
	}

	if problems := Validate(p); len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	p := &Payload{
		People: []PersonEntry{
			{Ref: "", DateOfBirth: strPtr("yesterday")},
			{Ref: "p2", RiskLevel: strPtr("EXTREME")},
		},
		Organizations: []OrganizationEntry{
			{Ref: "o1", Name: ""},
		},
		Relationships: []Relationship{
			PersonToPerson{Source: "", Target: "p2", Strength: strPtr("IRONCLAD")},
		},
	}

	problems := Validate(p)

	want := map[string]string{
		"people[0]._ref":            "is required",
		"people[0].dateOfBirth":     "must be an ISO-8601 timestamp",
		"people[1].riskLevel":       "must be one of: LOW, MEDIUM, HIGH, CRITICAL",
		"organizations[0].name":     "is required",
		"relationships[0].source":   "is required",
		"relationships[0].strength": "must be one of: STRONG, MODERATE, WEAK, UNKNOWN",
	}
	if len(problems) != len(want) {
		t.Fatalf("unexpected problem count: got %d (%v), want %d", len(problems), problems, len(want))
	}
	for _, prob := range problems {
		msg, ok := want[prob.Field]
		if !ok {
			t.Fatalf("unexpected problem field: %q", prob.Field)
		}
		if prob.Message != msg {
			t.Fatalf("field %q: got message %q, want %q", prob.Field, prob.Message, msg)
		}
	}
}

func TestValidateEnumRules(t *testing.T) {
	tests := []struct {
		name    string
		payload *Payload
		wantOK  bool
	}{
		{
			name: "valid estimated status",
			payload: &Payload{Events: []EventEntry{{
				Ref: "e1", Title: "t", EstimatedStatus: strPtr("SUSPECTED"),
			}}},
			wantOK: true,
		},
		{
			name: "invalid estimated status",
			payload: &Payload{Events: []EventEntry{{
				Ref: "e1", Title: "t", EstimatedStatus: strPtr("LIKELY"),
			}}},
			wantOK: false,
		},
		{
			name: "valid risk level on org",
			payload: &Payload{Organizations: []OrganizationEntry{{
				Ref: "o1", Name: "n", RiskLevel: strPtr("CRITICAL"),
			}}},
			wantOK: true,
		},
		{
			name: "timezone offset timestamp",
			payload: &Payload{Events: []EventEntry{{
				Ref: "e1", Title: "t", Date: strPtr("2024-06-01T12:00:00+02:00"),
			}}},
			wantOK: true,
		},
		{
			name: "date without time component",
			payload: &Payload{Events: []EventEntry{{
				Ref: "e1", Title: "t", Date: strPtr("2024-06-01"),
			}}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Validate(tt.payload)
			if tt.wantOK && len(problems) != 0 {
				t.Fatalf("unexpected problems: %v", problems)
			}
			if !tt.wantOK && len(problems) == 0 {
				t.Fatal("expected validation problems, got none")
			}
		})
	}
}
