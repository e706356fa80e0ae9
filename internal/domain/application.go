package domain

import (
	"context"
	"fmt"
	"time"
)

// Status is the handling state of a submitted application.
type Status string

const (
	StatusUnhandled Status = "unhandled"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

// ParseStatus validates a status string coming from a client.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnhandled, StatusAccepted, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("status must be one of: unhandled, accepted, rejected")
}

// Application is the one-per-person submission record.
type Application struct {
	ApplicationID int64     `json:"applicationId"`
	PersonID      int64     `json:"personId"`
	Status        Status    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// CanEdit reports whether the owner may mutate their profile data.
// Editable is defined strictly as: no application yet, or status unhandled.
// A rejected application must be deleted before the profile can change again.
func CanEdit(app *Application) bool {
	return app == nil || app.Status == StatusUnhandled
}

// CanDelete reports whether the owner may delete their application.
// Only an accepted application is locked.
func CanDelete(app *Application) bool {
	return app != nil && app.Status != StatusAccepted
}

// ApplicationSummary is the recruiter list row (owner joined in).
type ApplicationSummary struct {
	ApplicationID int64     `json:"applicationId"`
	PersonID      int64     `json:"personId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Status        Status    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// ApplicationDetails is the recruiter detail view with the owner's full
// profile eager-loaded.
type ApplicationDetails struct {
	Application  *Application        `json:"application"`
	Person       *Person             `json:"person"`
	Competences  []CompetenceProfile `json:"competences"`
	Availability []Availability      `json:"availability"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByPersonID(ctx context.Context, personID int64) (*Application, error)
	// GetByPersonIDForUpdate locks the application row for the rest of the
	// transaction so a concurrent status change cannot slip past a guard.
	GetByPersonIDForUpdate(ctx context.Context, personID int64) (*Application, error)
	List(ctx context.Context) ([]ApplicationSummary, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Application, error)
	Delete(ctx context.Context, id int64) error
}

type AddCompetenceInput struct {
	CompetenceID      int64
	YearsOfExperience float64
}

type AddAvailabilityInput struct {
	FromDate string
	ToDate   string
}

// ApplicationUsecase is the workflow engine over the application state
// machine. Every guarded mutation runs in one store transaction.
type ApplicationUsecase interface {
	ListCompetences(ctx context.Context) ([]Competence, error)

	// Applicant operations
	AddCompetence(ctx context.Context, personID int64, input AddCompetenceInput) (*CompetenceProfile, error)
	AddAvailability(ctx context.Context, personID int64, input AddAvailabilityInput) (*Availability, error)
	DeleteCompetence(ctx context.Context, competenceProfileID, personID int64) error
	DeleteAvailability(ctx context.Context, availabilityID, personID int64) error
	Submit(ctx context.Context, personID int64) (*Application, error)
	GetOwn(ctx context.Context, personID int64) (*Application, error)
	DeleteOwn(ctx context.Context, personID int64) error

	// Recruiter operations
	List(ctx context.Context) ([]ApplicationSummary, error)
	GetDetails(ctx context.Context, applicationID int64) (*ApplicationDetails, error)
	UpdateStatus(ctx context.Context, applicationID int64, status Status) (*Application, error)
}
