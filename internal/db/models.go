package db

import "time"

// Closed classification sets. These mirror the Postgres enum types created
// by the migrations.
const (
	RiskLevelLow      = "LOW"
	RiskLevelMedium   = "MEDIUM"
	RiskLevelHigh     = "HIGH"
	RiskLevelCritical = "CRITICAL"
)

type Person struct {
	ID             string            `json:"id"`
	FirstName      *string           `json:"firstName"`
	LastName       *string           `json:"lastName"`
	Aliases        []string          `json:"aliases"`
	DateOfBirth    *time.Time        `json:"dateOfBirth"`
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
	RiskLevel      *string           `json:"riskLevel"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type Organization struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        *string    `json:"type"`
	Industry    *string    `json:"industry"`
	Country     *string    `json:"country"`
	Address     *string    `json:"address"`
	Website     *string    `json:"website"`
	Phone       []string   `json:"phone"`
	Email       []string   `json:"email"`
	FoundedAt   *time.Time `json:"foundedAt"`
	Description *string    `json:"description"`
	Notes       *string    `json:"notes"`
	Tags        []string   `json:"tags"`
	RiskLevel   *string    `json:"riskLevel"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Type            *string    `json:"type"`
	Description     *string    `json:"description"`
	Date            *time.Time `json:"date"`
	EndDate         *time.Time `json:"endDate"`
	Location        *string    `json:"location"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	Country         *string    `json:"country"`
	EstimatedStatus *string    `json:"estimatedStatus"`
	Notes           *string    `json:"notes"`
	Tags            []string   `json:"tags"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type PersonToPersonRelation struct {
	ID               string     `json:"id"`
	SourcePersonID   string     `json:"sourcePersonId"`
	TargetPersonID   string     `json:"targetPersonId"`
	RelationshipType *string    `json:"relationshipType"`
	Context          *string    `json:"context"`
	EstimatedStatus  *string    `json:"estimatedStatus"`
	Strength         *string    `json:"strength"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Notes            *string    `json:"notes"`
	Tags             []string   `json:"tags"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type PersonToOrgRelation struct {
	ID              string     `json:"id"`
	PersonID        string     `json:"personId"`
	OrganizationID  string     `json:"organizationId"`
	Role            *string    `json:"role"`
	Department      *string    `json:"department"`
	Context         *string    `json:"context"`
	EstimatedStatus *string    `json:"estimatedStatus"`
	CurrentlyActive bool       `json:"currentlyActive"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Notes           *string    `json:"notes"`
	Tags            []string   `json:"tags"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type OrgToOrgRelation struct {
	ID               string     `json:"id"`
	SourceOrgID      string     `json:"sourceOrgId"`
	TargetOrgID      string     `json:"targetOrgId"`
	RelationshipType *string    `json:"relationshipType"`
	Context          *string    `json:"context"`
	EstimatedStatus  *string    `json:"estimatedStatus"`
	CurrentlyActive  bool       `json:"currentlyActive"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Notes            *string    `json:"notes"`
	Tags             []string   `json:"tags"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type EventToPerson struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	PersonID  string    `json:"personId"`
	Role      *string   `json:"role"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventToOrganization struct {
	ID             string    `json:"id"`
	EventID        string    `json:"eventId"`
	OrganizationID string    `json:"organizationId"`
	Role           *string   `json:"role"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}

type EventToEvent struct {
	ID               string    `json:"id"`
	SourceEventID    string    `json:"sourceEventId"`
	TargetEventID    string    `json:"targetEventId"`
	RelationshipType *string   `json:"relationshipType"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// File is a blob-store attachment row. Exactly one of the association ids
// should be set per record.
type File struct {
	ID                       string    `json:"id"`
	FileName                 string    `json:"fileName"`
	FileType                 string    `json:"fileType"`
	FileURL                  string    `json:"fileUrl"`
	FileSize                 *int32    `json:"fileSize"`
	Description              *string   `json:"description"`
	UploadedBy               *string   `json:"uploadedBy"`
	PersonID                 *string   `json:"personId"`
	OrganizationID           *string   `json:"organizationId"`
	EventID                  *string   `json:"eventId"`
	PersonToPersonRelationID *string   `json:"personToPersonRelationId"`
	PersonToOrgRelationID    *string   `json:"personToOrgRelationId"`
	OrgToOrgRelationID       *string   `json:"orgToOrgRelationId"`
	EventToEventRelationID   *string   `json:"eventToEventRelationId"`
	CreatedAt                time.Time `json:"createdAt"`
}
