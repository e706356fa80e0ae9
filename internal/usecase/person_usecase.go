package usecase

import (
	"context"

	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
)

type personUsecase struct {
	store domain.Store
}

// NewPersonUsecase creates the profile read usecase
func NewPersonUsecase(store domain.Store) domain.PersonUsecase {
	return &personUsecase{store: store}
}

// GetProfile returns the person with competences and availability eager-loaded.
func (uc *personUsecase) GetProfile(ctx context.Context, personID int64) (*domain.PersonProfile, error) {
	person, err := uc.store.Persons().GetByID(ctx, personID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, fail(err)
	}

	competences, err := uc.store.Profiles().ListCompetenceProfiles(ctx, personID)
	if err != nil {
		return nil, fail(err)
	}
	availability, err := uc.store.Profiles().ListAvailability(ctx, personID)
	if err != nil {
		return nil, fail(err)
	}

	if competences == nil {
		competences = []domain.CompetenceProfile{}
	}
	if availability == nil {
		availability = []domain.Availability{}
	}

	return &domain.PersonProfile{
		Person:       person,
		Competences:  competences,
		Availability: availability,
	}, nil
}
