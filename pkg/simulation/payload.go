// Package simulation implements the bulk graph-import pipeline: one JSON
// document describing people, organizations, events and the relationships
// among them is validated, checked for referential integrity, and written to
// the database in a single transaction. Entries reference each other through
// caller-chosen temporary "_ref" keys; durable ids are assigned at insert
// time and never supplied by the caller.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Payload is the unit of work for one import call. All four collections are
// optional and default to empty. It only lives for the duration of the call.
type Payload struct {
	People        []PersonEntry
	Organizations []OrganizationEntry
	Events        []EventEntry
	Relationships []Relationship
}

type PersonEntry struct {
	Ref            string            `json:"_ref" validate:"required"`
	FirstName      *string           `json:"firstName"`
	LastName       *string           `json:"lastName"`
	Aliases        []string          `json:"aliases"`
	DateOfBirth    *string           `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PlaceOfBirth   *string           `json:"placeOfBirth"`
	Nationality    *string           `json:"nationality"`
	Gender         *string           `json:"gender"`
	PhotoURL       *string           `json:"photoUrl"`
	Email          []string          `json:"email"`
	Phone          []string          `json:"phone"`
	Address        *string           `json:"address"`
	PassportNo     *string           `json:"passportNo"`
	NationalID     *string           `json:"nationalId"`
	TaxID          *string           `json:"taxId"`
	DriversLicense *string           `json:"driversLicense"`
	SocialMedia    map[string]string `json:"socialMedia"`
	Notes          *string           `json:"notes"`
	Tags           []string          `json:"tags"`
	RiskLevel      *string           `json:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
}

type OrganizationEntry struct {
	Ref         string   `json:"_ref" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Type        *string  `json:"type"`
	Industry    *string  `json:"industry"`
	Country     *string  `json:"country"`
	Address     *string  `json:"address"`
	Website     *string  `json:"website"`
	Phone       []string `json:"phone"`
	Email       []string `json:"email"`
	FoundedAt   *string  `json:"foundedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Description *string  `json:"description"`
	Notes       *string  `json:"notes"`
	Tags        []string `json:"tags"`
	RiskLevel   *string  `json:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
}

type EventEntry struct {
	Ref             string   `json:"_ref" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Type            *string  `json:"type"`
	Description     *string  `json:"description"`
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate         *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Location        *string  `json:"location"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Country         *string  `json:"country"`
	EstimatedStatus *string  `json:"estimatedStatus" validate:"omitempty,oneof=CONFIRMED SUSPECTED UNVERIFIED DENIED"`
	Notes           *string  `json:"notes"`
	Tags            []string `json:"tags"`
}

// Relationship is one entry of the document's relationships collection. The
// six concrete variants carry differently named endpoint fields, so they are
// modeled as a closed union discriminated on the wire "type" field.
type Relationship interface {
	Kind() string
}

const (
	KindPersonToPerson = "person-to-person"
	KindPersonToOrg    = "person-to-org"
	KindOrgToOrg       = "org-to-org"
	KindEventToPerson  = "event-to-person"
	KindEventToOrg     = "event-to-org"
	KindEventToEvent   = "event-to-event"
)

type PersonToPerson struct {
	Source           string   `json:"source" validate:"required"`
	Target           string   `json:"target" validate:"required"`
	RelationshipType *string  `json:"relationshipType"`
	Context          *string  `json:"context"`
	EstimatedStatus  *string  `json:"estimatedStatus" validate:"omitempty,oneof=CONFIRMED SUSPECTED UNVERIFIED DENIED"`
	Strength         *string  `json:"strength" validate:"omitempty,oneof=STRONG MODERATE WEAK UNKNOWN"`
	StartDate        *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate          *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes            *string  `json:"notes"`
	Tags             []string `json:"tags"`
}

func (PersonToPerson) Kind() string { return KindPersonToPerson }

type PersonToOrg struct {
	Person          string   `json:"person" validate:"required"`
	Organization    string   `json:"organization" validate:"required"`
	Role            *string  `json:"role"`
	Department      *string  `json:"department"`
	Context         *string  `json:"context"`
	EstimatedStatus *string  `json:"estimatedStatus" validate:"omitempty,oneof=CONFIRMED SUSPECTED UNVERIFIED DENIED"`
	CurrentlyActive *bool    `json:"currentlyActive"`
	StartDate       *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate         *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes           *string  `json:"notes"`
	Tags            []string `json:"tags"`
}

func (PersonToOrg) Kind() string { return KindPersonToOrg }

type OrgToOrg struct {
	Source           string   `json:"source" validate:"required"`
	Target           string   `json:"target" validate:"required"`
	RelationshipType *string  `json:"relationshipType"`
	Context          *string  `json:"context"`
	EstimatedStatus  *string  `json:"estimatedStatus" validate:"omitempty,oneof=CONFIRMED SUSPECTED UNVERIFIED DENIED"`
	CurrentlyActive  *bool    `json:"currentlyActive"`
	StartDate        *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate          *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes            *string  `json:"notes"`
	Tags             []string `json:"tags"`
}

func (OrgToOrg) Kind() string { return KindOrgToOrg }

type EventToPerson struct {
	Event  string  `json:"event" validate:"required"`
	Person string  `json:"person" validate:"required"`
	Role   *string `json:"role"`
	Notes  *string `json:"notes"`
}

func (EventToPerson) Kind() string { return KindEventToPerson }

type EventToOrg struct {
	Event        string  `json:"event" validate:"required"`
	Organization string  `json:"organization" validate:"required"`
	Role         *string `json:"role"`
	Notes        *string `json:"notes"`
}

func (EventToOrg) Kind() string { return KindEventToOrg }

type EventToEvent struct {
	Source           string  `json:"source" validate:"required"`
	Target           string  `json:"target" validate:"required"`
	RelationshipType *string `json:"relationshipType"`
	Notes            *string `json:"notes"`
}

func (EventToEvent) Kind() string { return KindEventToEvent }

// UnmarshalJSON decodes the document, dispatching each relationship entry on
// its "type" discriminator. Unknown discriminator values and malformed
// entries are rejected; every offending entry is reported, not just the
// first.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw struct {
		People        []PersonEntry       `json:"people"`
		Organizations []OrganizationEntry `json:"organizations"`
		Events        []EventEntry        `json:"events"`
		Relationships []json.RawMessage   `json:"relationships"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.People = raw.People
	p.Organizations = raw.Organizations
	p.Events = raw.Events
	p.Relationships = nil

	var errs []error
	for i, msg := range raw.Relationships {
		var disc struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &disc); err != nil {
			errs = append(errs, fmt.Errorf("relationships[%d]: %w", i, err))
			continue
		}

		rel, err := decodeRelationship(disc.Type, msg)
		if err != nil {
			errs = append(errs, fmt.Errorf("relationships[%d]: %w", i, err))
			continue
		}
		p.Relationships = append(p.Relationships, rel)
	}

	return errors.Join(errs...)
}

func decodeRelationship(kind string, msg json.RawMessage) (Relationship, error) {
	switch kind {
	case KindPersonToPerson:
		var r PersonToPerson
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return r, nil
	case KindPersonToOrg:
		var r PersonToOrg
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return r, nil
	case KindOrgToOrg:
		var r OrgToOrg
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return r, nil
	case KindEventToPerson:
		var r EventToPerson
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return r, nil
	case KindEventToOrg:
		var r EventToOrg
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return r, nil
	case KindEventToEvent:
		var r EventToEvent
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown relationship type %q", kind)
	}
}
