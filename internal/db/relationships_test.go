package db

import (
	"context"
	"errors"
	"testing"
)

func TestSoftDeleteRelationRejectsUnknownKind(t *testing.T) {
	q := New(nil)

	_, err := q.SoftDeleteRelation(context.Background(), RelationKind("person-to-planet"), "some-id")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, ErrUnknownRelationKind) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRelationTablesCoverAllKinds(t *testing.T) {
	kinds := []RelationKind{
		KindPersonToPerson,
		KindPersonToOrg,
		KindOrgToOrg,
		KindEventToPerson,
		KindEventToOrg,
		KindEventToEvent,
	}

	for _, kind := range kinds {
		if _, ok := relationTables[kind]; !ok {
			t.Fatalf("kind %q has no table mapping", kind)
		}
	}
	if len(relationTables) != len(kinds) {
		t.Fatalf("unexpected table count: got %d, want %d", len(relationTables), len(kinds))
	}
}
