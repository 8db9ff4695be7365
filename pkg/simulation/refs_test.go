package simulation

import (
	"reflect"
	"testing"
)

func TestCheckDuplicateRefs(t *testing.T) {
	tests := []struct {
		name    string
		payload *Payload
		want    []string
	}{
		{
			name: "no duplicates",
			payload: &Payload{
				People:        []PersonEntry{{Ref: "p1"}, {Ref: "p2"}},
				Organizations: []OrganizationEntry{{Ref: "o1"}},
				Events:        []EventEntry{{Ref: "e1"}},
			},
			want: nil,
		},
		{
			name: "duplicate within one collection",
			payload: &Payload{
				People: []PersonEntry{{Ref: "p1"}, {Ref: "p1"}},
			},
			want: []string{"p1"},
		},
		{
			name: "duplicate across collections",
			payload: &Payload{
				People: []PersonEntry{{Ref: "shared"}},
				Events: []EventEntry{{Ref: "shared"}},
			},
			want: []string{"shared"},
		},
		{
			name: "triple occurrence reported per extra occurrence",
			payload: &Payload{
				People:        []PersonEntry{{Ref: "x"}, {Ref: "x"}},
				Organizations: []OrganizationEntry{{Ref: "x"}},
			},
			want: []string{"x", "x"},
		},
		{
			name:    "empty document",
			payload: &Payload{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckDuplicateRefs(tt.payload)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected duplicates: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckDanglingRefsCleanDocument(t *testing.T) {
	p := &Payload{
		People:        []PersonEntry{{Ref: "p1"}, {Ref: "p2"}},
		Organizations: []OrganizationEntry{{Ref: "o1", Name: "Acme"}},
		Events:        []EventEntry{{Ref: "e1", Title: "Meeting"}},
		Relationships: []Relationship{
			PersonToPerson{Source: "p1", Target: "p2"},
			PersonToOrg{Person: "p1", Organization: "o1"},
			OrgToOrg{Source: "o1", Target: "o1"},
			EventToPerson{Event: "e1", Person: "p2"},
			EventToOrg{Event: "e1", Organization: "o1"},
			EventToEvent{Source: "e1", Target: "e1"},
		},
	}

	if errs := CheckDanglingRefs(p); len(errs) != 0 {
		t.Fatalf("unexpected dangling refs: %v", errs)
	}
}

func TestCheckDanglingRefsPerKind(t *testing.T) {
	base := Payload{
		People:        []PersonEntry{{Ref: "p1"}},
		Organizations: []OrganizationEntry{{Ref: "o1"}},
		Events:        []EventEntry{{Ref: "e1"}},
	}

	tests := []struct {
		name string
		rel  Relationship
		want []string
	}{
		{
			name: "person-to-person missing target",
			rel:  PersonToPerson{Source: "p1", Target: "ghost"},
			want: []string{`person-to-person: target "ghost" not found in people`},
		},
		{
			name: "person-to-org missing organization",
			rel:  PersonToOrg{Person: "p1", Organization: "ghost"},
			want: []string{`person-to-org: organization "ghost" not found in organizations`},
		},
		{
			name: "org-to-org missing source",
			rel:  OrgToOrg{Source: "ghost", Target: "o1"},
			want: []string{`org-to-org: source "ghost" not found in organizations`},
		},
		{
			name: "event-to-person missing event",
			rel:  EventToPerson{Event: "ghost", Person: "p1"},
			want: []string{`event-to-person: event "ghost" not found in events`},
		},
		{
			name: "event-to-org missing organization",
			rel:  EventToOrg{Event: "e1", Organization: "ghost"},
			want: []string{`event-to-org: organization "ghost" not found in organizations`},
		},
		{
			name: "event-to-event missing target",
			rel:  EventToEvent{Source: "e1", Target: "ghost"},
			want: []string{`event-to-event: target "ghost" not found in events`},
		},
		{
			name: "ref declared in wrong collection",
			rel:  PersonToPerson{Source: "p1", Target: "o1"},
			want: []string{`person-to-person: target "o1" not found in people`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.Relationships = []Relationship{tt.rel}

			got := CheckDanglingRefs(&p)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected errors: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckDanglingRefsReportsEveryEndpoint(t *testing.T) {
	p := &Payload{
		Relationships: []Relationship{
			PersonToPerson{Source: "a", Target: "b"},
			EventToEvent{Source: "c", Target: "d"},
		},
	}

	got := CheckDanglingRefs(p)
	want := []string{
		`person-to-person: source "a" not found in people`,
		`person-to-person: target "b" not found in people`,
		`event-to-event: source "c" not found in events`,
		`event-to-event: target "d" not found in events`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected errors: got %v, want %v", got, want)
	}
}
