package usecase

import (
	"errors"

	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
)

// fail passes classified failures through unchanged and wraps everything else
// as a database failure so store internals never reach the client.
func fail(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Database(err)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, domain.ErrDuplicate)
}
