package simulation

import "fmt"

// refSets holds the _ref keys declared by each entity collection.
type refSets struct {
	people map[string]struct{}
	orgs   map[string]struct{}
	events map[string]struct{}
}

func collectRefs(p *Payload) refSets {
	sets := refSets{
		people: make(map[string]struct{}, len(p.People)),
		orgs:   make(map[string]struct{}, len(p.Organizations)),
		events: make(map[string]struct{}, len(p.Events)),
	}
	for _, e := range p.People {
		sets.people[e.Ref] = struct{}{}
	}
	for _, e := range p.Organizations {
		sets.orgs[e.Ref] = struct{}{}
	}
	for _, e := range p.Events {
		sets.events[e.Ref] = struct{}{}
	}
	return sets
}

// CheckDuplicateRefs returns every _ref value that appears more than once
// across people, organizations, and events. Refs are scoped to the whole
// document, so entities of different kinds may not share one.
func CheckDuplicateRefs(p *Payload) []string {
	all := make([]string, 0, len(p.People)+len(p.Organizations)+len(p.Events))
	for _, e := range p.People {
		all = append(all, e.Ref)
	}
	for _, e := range p.Organizations {
		all = append(all, e.Ref)
	}
	for _, e := range p.Events {
		all = append(all, e.Ref)
	}

	seen := make(map[string]struct{}, len(all))
	var dupes []string
	for _, ref := range all {
		if _, ok := seen[ref]; ok {
			dupes = append(dupes, ref)
		}
		seen[ref] = struct{}{}
	}
	return dupes
}

// CheckDanglingRefs verifies that every relationship endpoint names a _ref
// declared in the matching entity collection of the same document. All
// failing endpoints are reported so the caller can fix the document in one
// round-trip.
func CheckDanglingRefs(p *Payload) []string {
	sets := collectRefs(p)

	var errs []string
	for _, rel := range p.Relationships {
		switch r := rel.(type) {
		case PersonToPerson:
			errs = appendDangling(errs, sets.people, r.Kind(), "source", r.Source, "people")
			errs = appendDangling(errs, sets.people, r.Kind(), "target", r.Target, "people")
		case PersonToOrg:
			errs = appendDangling(errs, sets.people, r.Kind(), "person", r.Person, "people")
			errs = appendDangling(errs, sets.orgs, r.Kind(), "organization", r.Organization, "organizations")
		case OrgToOrg:
			errs = appendDangling(errs, sets.orgs, r.Kind(), "source", r.Source, "organizations")
			errs = appendDangling(errs, sets.orgs, r.Kind(), "target", r.Target, "organizations")
		case EventToPerson:
			errs = appendDangling(errs, sets.events, r.Kind(), "event", r.Event, "events")
			errs = appendDangling(errs, sets.people, r.Kind(), "person", r.Person, "people")
		case EventToOrg:
			errs = appendDangling(errs, sets.events, r.Kind(), "event", r.Event, "events")
			errs = appendDangling(errs, sets.orgs, r.Kind(), "organization", r.Organization, "organizations")
		case EventToEvent:
			errs = appendDangling(errs, sets.events, r.Kind(), "source", r.Source, "events")
			errs = appendDangling(errs, sets.events, r.Kind(), "target", r.Target, "events")
		}
	}
	return errs
}

func appendDangling(errs []string, set map[string]struct{}, kind, field, value, collection string) []string {
	if _, ok := set[value]; ok {
		return errs
	}
	return append(errs, fmt.Sprintf("%s: %s %q not found in %s", kind, field, value, collection))
}
