package domain

import "context"

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleRecruiter Role = "recruiter"
)

// Person is an identity record. Email, username and person number are each
// globally unique; the role is fixed at creation and never changes.
type Person struct {
	PersonID     int64  `json:"personId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PersonNumber string `json:"personNumber"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// PersonProfile is a person with their competence and availability data
// eager-loaded, as returned by GET /person/me.
type PersonProfile struct {
	Person       *Person             `json:"person"`
	Competences  []CompetenceProfile `json:"competences"`
	Availability []Availability      `json:"availability"`
}

type PersonRepository interface {
	Create(ctx context.Context, person *Person) error
	GetByID(ctx context.Context, id int64) (*Person, error)
	GetByUsername(ctx context.Context, username string) (*Person, error)
	GetByEmail(ctx context.Context, email string) (*Person, error)
	// LockByID takes a row lock on the person, serializing guarded
	// workflow writes for the same person within a transaction.
	LockByID(ctx context.Context, id int64) error
}

type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	PersonNumber string
	Username     string
	Password     string
}

type AuthUsecase interface {
	// Register creates an applicant account. The role is forced to
	// applicant regardless of client input.
	Register(ctx context.Context, input RegisterInput) (*Person, error)
	// Login verifies credentials and returns the person plus a signed
	// session token. Unknown username and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*Person, string, error)
	// CurrentUser resolves an authenticated person id to a fresh identity
	// record. No caching: role changes take effect on the next request.
	CurrentUser(ctx context.Context, id int64) (*Person, error)
}

type PersonUsecase interface {
	GetProfile(ctx context.Context, personID int64) (*PersonProfile, error)
}
