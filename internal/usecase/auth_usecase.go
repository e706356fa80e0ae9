package usecase

import (
	"context"

	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/auth"
)

type authUsecase struct {
	store  domain.Store
	tokens *auth.TokenManager
}

// NewAuthUsecase creates the identity and credential usecase
func NewAuthUsecase(store domain.Store, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{store: store, tokens: tokens}
}

// Register creates an applicant account. Username and email uniqueness is
// checked inside the same transaction as the insert; the unique constraints
// remain the backstop for registrations racing past the checks.
func (uc *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.Person, error) {
	// Hash outside the transaction, bcrypt is deliberately slow
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fail(err)
	}

	person := &domain.Person{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PersonNumber: input.PersonNumber,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         domain.RoleApplicant,
	}

	err = uc.store.InTx(ctx, func(s domain.Store) error {
		if _, err := s.Persons().GetByUsername(ctx, input.Username); err == nil {
			return apperror.Conflict("Username already exists")
		} else if !isNotFound(err) {
			return fail(err)
		}

		if _, err := s.Persons().GetByEmail(ctx, input.Email); err == nil {
			return apperror.Conflict("Email already exists")
		} else if !isNotFound(err) {
			return fail(err)
		}

		if err := s.Persons().Create(ctx, person); err != nil {
			if isDuplicate(err) {
				return apperror.Conflict("Username, email or person number already exists")
			}
			return fail(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

// Login verifies credentials and issues a session token. The failure message
// is identical for an unknown username and a wrong password.
func (uc *authUsecase) Login(ctx context.Context, username, password string) (*domain.Person, string, error) {
	person, err := uc.store.Persons().GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperror.Unauthorized("Invalid username or password")
		}
		return nil, "", fail(err)
	}

	if !auth.CheckPassword(person.PasswordHash, password) {
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}

	token, err := uc.tokens.Generate(person)
	if err != nil {
		return nil, "", fail(err)
	}
	return person, token, nil
}

// CurrentUser resolves the authenticated id against the identity store on
// every request, so a deleted account invalidates its tokens immediately.
func (uc *authUsecase) CurrentUser(ctx context.Context, id int64) (*domain.Person, error) {
	person, err := uc.store.Persons().GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, fail(err)
	}
	return person, nil
}
