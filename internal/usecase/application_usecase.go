package usecase

import (
	"context"
	"fmt"

	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/validation"
)

type applicationUsecase struct {
	store domain.Store
}

// NewApplicationUsecase creates the application workflow usecase
func NewApplicationUsecase(store domain.Store) domain.ApplicationUsecase {
	return &applicationUsecase{store: store}
}

func (uc *applicationUsecase) ListCompetences(ctx context.Context) ([]domain.Competence, error) {
	competences, err := uc.store.Competences().List(ctx)
	if err != nil {
		return nil, fail(err)
	}
	if competences == nil {
		competences = []domain.Competence{}
	}
	return competences, nil
}

// requireEditable locks the person row, then re-reads the application under
// the same lock order. The status read and the write that follows happen in
// one transaction, so a concurrent status change cannot slip between them.
func requireEditable(ctx context.Context, s domain.Store, personID int64) error {
	if err := s.Persons().LockByID(ctx, personID); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Person not found")
		}
		return fail(err)
	}

	app, err := s.Applications().GetByPersonIDForUpdate(ctx, personID)
	if err != nil {
		return fail(err)
	}
	if !domain.CanEdit(app) {
		return apperror.Forbidden(fmt.Sprintf("Application is %s and cannot be modified", app.Status))
	}
	return nil
}

// AddCompetence adds a competence claim while the application is editable.
func (uc *applicationUsecase) AddCompetence(ctx context.Context, personID int64, input domain.AddCompetenceInput) (*domain.CompetenceProfile, error) {
	if input.YearsOfExperience < 0 {
		return nil, apperror.Validation("Validation failed", "Years of experience must be a non-negative number")
	}

	profile := &domain.CompetenceProfile{
		PersonID:          personID,
		CompetenceID:      input.CompetenceID,
		YearsOfExperience: input.YearsOfExperience,
	}

	err := uc.store.InTx(ctx, func(s domain.Store) error {
		if err := requireEditable(ctx, s, personID); err != nil {
			return err
		}

		competence, err := s.Competences().GetByID(ctx, input.CompetenceID)
		if err != nil {
			if isNotFound(err) {
				return apperror.NotFound("Competence not found")
			}
			return fail(err)
		}
		profile.CompetenceName = competence.Name

		if err := s.Profiles().CreateCompetenceProfile(ctx, profile); err != nil {
			return fail(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// AddAvailability adds an availability period while the application is editable.
func (uc *applicationUsecase) AddAvailability(ctx context.Context, personID int64, input domain.AddAvailabilityInput) (*domain.Availability, error) {
	from, err := validation.ParseDate(input.FromDate)
	if err != nil {
		return nil, apperror.Validation("Validation failed", "From date must be in YYYY-MM-DD format")
	}
	to, err := validation.ParseDate(input.ToDate)
	if err != nil {
		return nil, apperror.Validation("Validation failed", "To date must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return nil, apperror.Validation("Validation failed", "To date must be equal to or after from date")
	}

	availability := &domain.Availability{
		PersonID: personID,
		FromDate: input.FromDate,
		ToDate:   input.ToDate,
	}

	err = uc.store.InTx(ctx, func(s domain.Store) error {
		if err := requireEditable(ctx, s, personID); err != nil {
			return err
		}
		if err := s.Profiles().CreateAvailability(ctx, availability); err != nil {
			return fail(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return availability, nil
}

func (uc *applicationUsecase) DeleteCompetence(ctx context.Context, competenceProfileID, personID int64) error {
	return uc.store.InTx(ctx, func(s domain.Store) error {
		if err := requireEditable(ctx, s, personID); err != nil {
			return err
		}
		deleted, err := s.Profiles().DeleteCompetenceProfile(ctx, competenceProfileID, personID)
		if err != nil {
			return fail(err)
		}
		if !deleted {
			return apperror.NotFound("Competence profile not found")
		}
		return nil
	})
}

func (uc *applicationUsecase) DeleteAvailability(ctx context.Context, availabilityID, personID int64) error {
	return uc.store.InTx(ctx, func(s domain.Store) error {
		if err := requireEditable(ctx, s, personID); err != nil {
			return err
		}
		deleted, err := s.Profiles().DeleteAvailability(ctx, availabilityID, personID)
		if err != nil {
			return fail(err)
		}
		if !deleted {
			return apperror.NotFound("Availability period not found")
		}
		return nil
	})
}

// Submit creates the application once the profile is complete enough.
// The existence check, the completeness counts and the insert share one
// transaction; the unique index on person_id catches a racing double submit.
func (uc *applicationUsecase) Submit(ctx context.Context, personID int64) (*domain.Application, error) {
	app := &domain.Application{
		PersonID: personID,
		Status:   domain.StatusUnhandled,
	}

	err := uc.store.InTx(ctx, func(s domain.Store) error {
		if err := s.Persons().LockByID(ctx, personID); err != nil {
			if isNotFound(err) {
				return apperror.NotFound("Person not found")
			}
			return fail(err)
		}

		existing, err := s.Applications().GetByPersonIDForUpdate(ctx, personID)
		if err != nil {
			return fail(err)
		}
		if existing != nil {
			return apperror.Conflict("Application already submitted")
		}

		competenceCount, err := s.Profiles().CountCompetenceProfiles(ctx, personID)
		if err != nil {
			return fail(err)
		}
		if competenceCount == 0 {
			return apperror.Validation("At least one competence is required")
		}

		availabilityCount, err := s.Profiles().CountAvailability(ctx, personID)
		if err != nil {
			return fail(err)
		}
		if availabilityCount == 0 {
			return apperror.Validation("At least one availability period is required")
		}

		if err := s.Applications().Create(ctx, app); err != nil {
			if isDuplicate(err) {
				return apperror.Conflict("Application already submitted")
			}
			return fail(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (uc *applicationUsecase) GetOwn(ctx context.Context, personID int64) (*domain.Application, error) {
	app, err := uc.store.Applications().GetByPersonID(ctx, personID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, fail(err)
	}
	return app, nil
}

// DeleteOwn removes the application and cascades over the owner's competence
// profiles and availability periods in one transaction. An accepted
// application is locked and cannot be deleted.
func (uc *applicationUsecase) DeleteOwn(ctx context.Context, personID int64) error {
	return uc.store.InTx(ctx, func(s domain.Store) error {
		if err := s.Persons().LockByID(ctx, personID); err != nil {
			if isNotFound(err) {
				return apperror.NotFound("Person not found")
			}
			return fail(err)
		}

		app, err := s.Applications().GetByPersonIDForUpdate(ctx, personID)
		if err != nil {
			return fail(err)
		}
		if app == nil {
			return apperror.NotFound("Application not found")
		}
		if !domain.CanDelete(app) {
			return apperror.Forbidden("Application is accepted and cannot be deleted")
		}

		if err := s.Profiles().DeleteAllByPerson(ctx, personID); err != nil {
			return fail(err)
		}
		if err := s.Applications().Delete(ctx, app.ApplicationID); err != nil {
			return fail(err)
		}
		return nil
	})
}

func (uc *applicationUsecase) List(ctx context.Context) ([]domain.ApplicationSummary, error) {
	applications, err := uc.store.Applications().List(ctx)
	if err != nil {
		return nil, fail(err)
	}
	if applications == nil {
		applications = []domain.ApplicationSummary{}
	}
	return applications, nil
}

// GetDetails returns the application with the owner's full profile for the
// recruiter detail view.
func (uc *applicationUsecase) GetDetails(ctx context.Context, applicationID int64) (*domain.ApplicationDetails, error) {
	app, err := uc.store.Applications().GetByID(ctx, applicationID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, fail(err)
	}

	person, err := uc.store.Persons().GetByID(ctx, app.PersonID)
	if err != nil {
		return nil, fail(err)
	}

	competences, err := uc.store.Profiles().ListCompetenceProfiles(ctx, app.PersonID)
	if err != nil {
		return nil, fail(err)
	}
	availability, err := uc.store.Profiles().ListAvailability(ctx, app.PersonID)
	if err != nil {
		return nil, fail(err)
	}

	if competences == nil {
		competences = []domain.CompetenceProfile{}
	}
	if availability == nil {
		availability = []domain.Availability{}
	}

	return &domain.ApplicationDetails{
		Application:  app,
		Person:       person,
		Competences:  competences,
		Availability: availability,
	}, nil
}

// UpdateStatus persists a recruiter decision. Repeating the same status is
// idempotent; a decided application may also be reset to unhandled.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, applicationID int64, status domain.Status) (*domain.Application, error) {
	app, err := uc.store.Applications().UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, fail(err)
	}
	return app, nil
}
