package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/internal/usecase"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockPersonRepo struct {
	mock.Mock
}

func (m *MockPersonRepo) Create(ctx context.Context, person *domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockPersonRepo) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) LockByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompetenceRepo struct {
	mock.Mock
}

func (m *MockCompetenceRepo) List(ctx context.Context) ([]domain.Competence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Competence), args.Error(1)
}

func (m *MockCompetenceRepo) GetByID(ctx context.Context, id int64) (*domain.Competence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competence), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) CreateCompetenceProfile(ctx context.Context, profile *domain.CompetenceProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) ListCompetenceProfiles(ctx context.Context, personID int64) ([]domain.CompetenceProfile, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompetenceProfile), args.Error(1)
}

func (m *MockProfileRepo) DeleteCompetenceProfile(ctx context.Context, id, personID int64) (bool, error) {
	args := m.Called(ctx, id, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) CountCompetenceProfiles(ctx context.Context, personID int64) (int, error) {
	args := m.Called(ctx, personID)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileRepo) CreateAvailability(ctx context.Context, availability *domain.Availability) error {
	return m.Called(ctx, availability).Error(0)
}

func (m *MockProfileRepo) ListAvailability(ctx context.Context, personID int64) ([]domain.Availability, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Availability), args.Error(1)
}

func (m *MockProfileRepo) DeleteAvailability(ctx context.Context, id, personID int64) (bool, error) {
	args := m.Called(ctx, id, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) CountAvailability(ctx context.Context, personID int64) (int, error) {
	args := m.Called(ctx, personID)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileRepo) DeleteAllByPerson(ctx context.Context, personID int64) error {
	return m.Called(ctx, personID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByPersonID(ctx context.Context, personID int64) (*domain.Application, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByPersonIDForUpdate(ctx context.Context, personID int64) (*domain.Application, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.ApplicationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationSummary), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockStore hands every transactional callback the same repository set, so a
// guarded workflow can be exercised without a database.
type MockStore struct {
	persons      *MockPersonRepo
	competences  *MockCompetenceRepo
	profiles     *MockProfileRepo
	applications *MockApplicationRepo
}

func newMockStore() *MockStore {
	return &MockStore{
		persons:      new(MockPersonRepo),
		competences:  new(MockCompetenceRepo),
		profiles:     new(MockProfileRepo),
		applications: new(MockApplicationRepo),
	}
}

func (s *MockStore) Persons() domain.PersonRepository           { return s.persons }
func (s *MockStore) Competences() domain.CompetenceRepository   { return s.competences }
func (s *MockStore) Profiles() domain.ProfileRepository         { return s.profiles }
func (s *MockStore) Applications() domain.ApplicationRepository { return s.applications }

func (s *MockStore) InTx(ctx context.Context, fn func(domain.Store) error) error {
	return fn(s)
}

func asAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	return appErr
}

func TestSubmitGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a second application", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusUnhandled}, nil)

		_, err := uc.Submit(ctx, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusConflict, appErr.Status)
		assert.Equal(t, "Application already submitted", appErr.Message)
		store.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require at least one competence", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)
		store.profiles.On("CountCompetenceProfiles", ctx, int64(1)).Return(0, nil)

		_, err := uc.Submit(ctx, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Contains(t, appErr.Message, "At least one competence")
	})

	t.Run("Should require at least one availability period", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)
		store.profiles.On("CountCompetenceProfiles", ctx, int64(1)).Return(2, nil)
		store.profiles.On("CountAvailability", ctx, int64(1)).Return(0, nil)

		_, err := uc.Submit(ctx, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Contains(t, appErr.Message, "At least one availability period")
	})

	t.Run("Should map a racing duplicate insert to conflict", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)
		store.profiles.On("CountCompetenceProfiles", ctx, int64(1)).Return(1, nil)
		store.profiles.On("CountAvailability", ctx, int64(1)).Return(1, nil)
		store.applications.On("Create", ctx, mock.AnythingOfType("*domain.Application")).
			Return(domain.ErrDuplicate)

		_, err := uc.Submit(ctx, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusConflict, appErr.Status)
	})

	t.Run("Should submit as unhandled when the profile is complete", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)
		store.profiles.On("CountCompetenceProfiles", ctx, int64(1)).Return(1, nil)
		store.profiles.On("CountAvailability", ctx, int64(1)).Return(1, nil)
		store.applications.On("Create", ctx, mock.AnythingOfType("*domain.Application")).
			Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			app.ApplicationID = 42
			app.SubmittedAt = time.Now()
		})

		app, err := uc.Submit(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(42), app.ApplicationID)
		assert.Equal(t, domain.StatusUnhandled, app.Status)
	})
}

func TestProfileEditGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Should block competence edits once accepted", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusAccepted}, nil)

		_, err := uc.AddCompetence(ctx, 1, domain.AddCompetenceInput{CompetenceID: 3, YearsOfExperience: 2})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusForbidden, appErr.Status)
		assert.Contains(t, appErr.Message, "accepted")
		store.profiles.AssertNotCalled(t, "CreateCompetenceProfile", mock.Anything, mock.Anything)
	})

	t.Run("Should block availability edits once rejected", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusRejected}, nil)

		_, err := uc.AddAvailability(ctx, 1, domain.AddAvailabilityInput{FromDate: "2026-06-01", ToDate: "2026-08-31"})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusForbidden, appErr.Status)
		assert.Contains(t, appErr.Message, "rejected")
	})

	t.Run("Should allow edits while unhandled", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusUnhandled}, nil)
		store.competences.On("GetByID", ctx, int64(3)).
			Return(&domain.Competence{CompetenceID: 3, Name: "lotteries"}, nil)
		store.profiles.On("CreateCompetenceProfile", ctx, mock.AnythingOfType("*domain.CompetenceProfile")).
			Return(nil)

		profile, err := uc.AddCompetence(ctx, 1, domain.AddCompetenceInput{CompetenceID: 3, YearsOfExperience: 0})
		require.NoError(t, err)
		assert.Equal(t, "lotteries", profile.CompetenceName)
		assert.Equal(t, int64(1), profile.PersonID)
	})

	t.Run("Should reject negative years of experience before touching the store", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		_, err := uc.AddCompetence(ctx, 1, domain.AddCompetenceInput{CompetenceID: 3, YearsOfExperience: -1})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		store.persons.AssertNotCalled(t, "LockByID", mock.Anything, mock.Anything)
	})

	t.Run("Should reject unknown competence", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)
		store.competences.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.AddCompetence(ctx, 1, domain.AddCompetenceInput{CompetenceID: 99, YearsOfExperience: 1})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})

	t.Run("Should reject an inverted availability range", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		_, err := uc.AddAvailability(ctx, 1, domain.AddAvailabilityInput{FromDate: "2026-08-31", ToDate: "2026-06-01"})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Contains(t, appErr.Errors, "To date must be equal to or after from date")
	})

	t.Run("Should reject a malformed date", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		_, err := uc.AddAvailability(ctx, 1, domain.AddAvailabilityInput{FromDate: "01/06/2026", ToDate: "2026-08-31"})
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
	})

	t.Run("Should not leak other applicants' rows through delete", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)
		// Ownership mismatch surfaces as not-deleted, never as someone else's row
		store.profiles.On("DeleteCompetenceProfile", ctx, int64(5), int64(1)).Return(false, nil)

		err := uc.DeleteCompetence(ctx, 5, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})
}

func TestDeleteOwnApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse to delete an accepted application", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusAccepted}, nil)

		err := uc.DeleteOwn(ctx, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusForbidden, appErr.Status)
		store.applications.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should 404 when no application exists", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).Return(nil, nil)

		err := uc.DeleteOwn(ctx, 1)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})

	t.Run("Should cascade over profile data for a rejected application", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.persons.On("LockByID", ctx, int64(1)).Return(nil)
		store.applications.On("GetByPersonIDForUpdate", ctx, int64(1)).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusRejected}, nil)
		store.profiles.On("DeleteAllByPerson", ctx, int64(1)).Return(nil)
		store.applications.On("Delete", ctx, int64(7)).Return(nil)

		err := uc.DeleteOwn(ctx, 1)
		require.NoError(t, err)
		store.profiles.AssertCalled(t, "DeleteAllByPerson", ctx, int64(1))
		store.applications.AssertCalled(t, "Delete", ctx, int64(7))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 on an unknown application", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.applications.On("UpdateStatus", ctx, int64(99), domain.StatusAccepted).
			Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateStatus(ctx, 99, domain.StatusAccepted)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})

	t.Run("Should pass the decision through, including a reset to unhandled", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewApplicationUsecase(store)

		store.applications.On("UpdateStatus", ctx, int64(7), domain.StatusUnhandled).
			Return(&domain.Application{ApplicationID: 7, PersonID: 1, Status: domain.StatusUnhandled}, nil)

		app, err := uc.UpdateStatus(ctx, 7, domain.StatusUnhandled)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnhandled, app.Status)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	input := domain.RegisterInput{
		FirstName:    "Anna",
		LastName:     "Andersson",
		Email:        "anna@example.com",
		PersonNumber: "19900101-1234",
		Username:     "anna",
		Password:     "secret1",
	}

	t.Run("Should conflict on an existing username", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewAuthUsecase(store, tokens)

		store.persons.On("GetByUsername", ctx, "anna").
			Return(&domain.Person{PersonID: 2, Username: "anna"}, nil)

		_, err := uc.Register(ctx, input)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusConflict, appErr.Status)
		assert.Equal(t, "Username already exists", appErr.Message)
	})

	t.Run("Should conflict on an existing email", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewAuthUsecase(store, tokens)

		store.persons.On("GetByUsername", ctx, "anna").Return(nil, domain.ErrNotFound)
		store.persons.On("GetByEmail", ctx, "anna@example.com").
			Return(&domain.Person{PersonID: 2, Email: "anna@example.com"}, nil)

		_, err := uc.Register(ctx, input)
		appErr := asAppError(t, err)
		assert.Equal(t, http.StatusConflict, appErr.Status)
		assert.Equal(t, "Email already exists", appErr.Message)
	})

	t.Run("Should force the applicant role and store a hash, not the password", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewAuthUsecase(store, tokens)

		store.persons.On("GetByUsername", ctx, "anna").Return(nil, domain.ErrNotFound)
		store.persons.On("GetByEmail", ctx, "anna@example.com").Return(nil, domain.ErrNotFound)
		store.persons.On("Create", ctx, mock.AnythingOfType("*domain.Person")).
			Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Person)
			assert.Equal(t, domain.RoleApplicant, p.Role)
			assert.NotEmpty(t, p.PasswordHash)
			assert.NotEqual(t, input.Password, p.PasswordHash)
		})

		person, err := uc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleApplicant, person.Role)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	t.Run("Should not distinguish unknown user from wrong password", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewAuthUsecase(store, tokens)

		store.persons.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
		store.persons.On("GetByUsername", ctx, "anna").
			Return(&domain.Person{PersonID: 1, Username: "anna", PasswordHash: hash}, nil)

		_, _, errUnknown := uc.Login(ctx, "ghost", "whatever")
		_, _, errWrongPass := uc.Login(ctx, "anna", "wrong")

		appErr1 := asAppError(t, errUnknown)
		appErr2 := asAppError(t, errWrongPass)
		assert.Equal(t, http.StatusUnauthorized, appErr1.Status)
		assert.Equal(t, appErr1.Message, appErr2.Message)
	})

	t.Run("Should return a verifiable token on success", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewAuthUsecase(store, tokens)

		store.persons.On("GetByUsername", ctx, "anna").
			Return(&domain.Person{PersonID: 1, Username: "anna", PasswordHash: hash, Role: domain.RoleApplicant}, nil)

		person, token, err := uc.Login(ctx, "anna", "secret1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), person.PersonID)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "applicant", claims.Role)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty slices, never nil", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewPersonUsecase(store)

		store.persons.On("GetByID", ctx, int64(1)).
			Return(&domain.Person{PersonID: 1, Username: "anna"}, nil)
		store.profiles.On("ListCompetenceProfiles", ctx, int64(1)).Return(nil, nil)
		store.profiles.On("ListAvailability", ctx, int64(1)).Return(nil, nil)

		profile, err := uc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, profile.Competences)
		assert.NotNil(t, profile.Availability)
		assert.Len(t, profile.Competences, 0)
	})
}
