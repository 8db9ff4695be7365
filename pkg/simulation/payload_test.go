package simulation

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPayloadUnmarshalDispatchesRelationships(t *testing.T) {
	doc := `{
		"people": [{"_ref": "p1", "firstName": "Ada"}],
		"organizations": [{"_ref": "o1", "name": "Acme"}],
		"events": [{"_ref": "e1", "title": "Meeting"}],
		"relationships": [
			{"type": "person-to-person", "source": "p1", "target": "p1", "strength": "STRONG"},
			{"type": "person-to-org", "person": "p1", "organization": "o1", "role": "analyst"},
			{"type": "org-to-org", "source": "o1", "target": "o1"},
			{"type": "event-to-person", "event": "e1", "person": "p1"},
			{"type": "event-to-org", "event": "e1", "organization": "o1"},
			{"type": "event-to-event", "source": "e1", "target": "e1"}
		]
	}`

	var p Payload
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	if len(p.People) != 1 || len(p.Organizations) != 1 || len(p.Events) != 1 {
		t.Fatalf("unexpected entity counts: people=%d orgs=%d events=%d",
			len(p.People), len(p.Organizations), len(p.Events))
	}
	if len(p.Relationships) != 6 {
		t.Fatalf("unexpected relationship count: got %d, want 6", len(p.Relationships))
	}

	wantKinds := []string{
		KindPersonToPerson,
		KindPersonToOrg,
		KindOrgToOrg,
		KindEventToPerson,
		KindEventToOrg,
		KindEventToEvent,
	}
	for i, rel := range p.Relationships {
		if rel.Kind() != wantKinds[i] {
			t.Fatalf("relationship %d: got kind %q, want %q", i, rel.Kind(), wantKinds[i])
		}
	}

	p2p, ok := p.Relationships[0].(PersonToPerson)
	if !ok {
		t.Fatalf("relationship 0 has unexpected type %T", p.Relationships[0])
	}
	if p2p.Source != "p1" || p2p.Target != "p1" {
		t.Fatalf("unexpected endpoints: source=%q target=%q", p2p.Source, p2p.Target)
	}
	if p2p.Strength == nil || *p2p.Strength != "STRONG" {
		t.Fatalf("unexpected strength: %v", p2p.Strength)
	}
}

func TestPayloadUnmarshalRejectsUnknownType(t *testing.T) {
	doc := `{"relationships": [{"type": "person-to-planet", "source": "p1", "target": "x"}]}`

	var p Payload
	err := json.Unmarshal([]byte(doc), &p)
	if err == nil {
		t.Fatal("expected error for unknown relationship type")
	}
	if !strings.Contains(err.Error(), `unknown relationship type "person-to-planet"`) {
		t.Fatalf("unexpected error message: %v", err)
	}
	if !strings.Contains(err.Error(), "relationships[0]") {
		t.Fatalf("error should name the failing index: %v", err)
	}
}

func TestPayloadUnmarshalReportsEveryBadRelationship(t *testing.T) {
	doc := `{
		"relationships": [
			{"type": "alpha-bad"},
			{"type": "person-to-person", "source": 5, "target": "p2"},
			{"type": "beta-bad"}
		]
	}`

	var p Payload
	err := json.Unmarshal([]byte(doc), &p)
	if err == nil {
		t.Fatal("expected errors for bad relationship entries")
	}

	msg := err.Error()
	for _, want := range []string{
		`relationships[0]: unknown relationship type "alpha-bad"`,
		"relationships[1]:",
		`relationships[2]: unknown relationship type "beta-bad"`,
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error should contain %q, got: %v", want, err)
		}
	}
}

func TestPayloadUnmarshalEmptyDocument(t *testing.T) {
	var p Payload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.People) != 0 || len(p.Organizations) != 0 || len(p.Events) != 0 || len(p.Relationships) != 0 {
		t.Fatal("empty document should produce empty collections")
	}
}

func TestPayloadUnmarshalMissingTypeField(t *testing.T) {
	doc := `{"relationships": [{"source": "a", "target": "b"}]}`

	var p Payload
	err := json.Unmarshal([]byte(doc), &p)
	if err == nil {
		t.Fatal("expected error for relationship without type")
	}
	if !strings.Contains(err.Error(), `unknown relationship type ""`) {
		t.Fatalf("unexpected error message: %v", err)
	}
}
