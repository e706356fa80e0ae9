package domain

import "context"

// Competence is a catalog entry (read-mostly reference data).
type Competence struct {
	CompetenceID int64  `json:"competenceId"`
	Name         string `json:"name"`
}

// CompetenceProfile is an applicant's claim of experience in one competence.
type CompetenceProfile struct {
	CompetenceProfileID int64   `json:"competenceProfileId"`
	PersonID            int64   `json:"personId"`
	CompetenceID        int64   `json:"competenceId"`
	YearsOfExperience   float64 `json:"yearsOfExperience"`

	// Joined catalog name for list responses
	CompetenceName string `json:"competenceName,omitempty"`
}

// Availability is a date range during which the applicant is available.
// Dates are calendar dates in YYYY-MM-DD form; ToDate >= FromDate.
type Availability struct {
	AvailabilityID int64  `json:"availabilityId"`
	PersonID       int64  `json:"personId"`
	FromDate       string `json:"fromDate"`
	ToDate         string `json:"toDate"`
}

type CompetenceRepository interface {
	List(ctx context.Context) ([]Competence, error)
	GetByID(ctx context.Context, id int64) (*Competence, error)
}

// ProfileRepository covers the per-person profile collections. Deletes are
// ownership-checked in the store (id AND person id in one statement).
type ProfileRepository interface {
	CreateCompetenceProfile(ctx context.Context, profile *CompetenceProfile) error
	ListCompetenceProfiles(ctx context.Context, personID int64) ([]CompetenceProfile, error)
	DeleteCompetenceProfile(ctx context.Context, id, personID int64) (bool, error)
	CountCompetenceProfiles(ctx context.Context, personID int64) (int, error)

	CreateAvailability(ctx context.Context, availability *Availability) error
	ListAvailability(ctx context.Context, personID int64) ([]Availability, error)
	DeleteAvailability(ctx context.Context, id, personID int64) (bool, error)
	CountAvailability(ctx context.Context, personID int64) (int, error)

	// DeleteAllByPerson removes every competence profile and availability
	// period owned by the person. Used by the application cascade delete.
	DeleteAllByPerson(ctx context.Context, personID int64) error
}
