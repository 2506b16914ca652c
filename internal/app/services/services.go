// Package services holds the API-facing business rules. Services depend on
// repositories.Storage only, so they run unchanged on either backend.
package services

import (
	"context"
	"fmt"

	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
)

// validateID rejects non-positive identifiers
func validateID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidationFailed, name)
	}
	return nil
}

// checkUniversity verifies an optional university reference
func checkUniversity(ctx context.Context, universities repositories.UniversityRepository, id *int64) error {
	if id == nil {
		return nil
	}
	uni, err := universities.GetUniversity(ctx, *id)
	if err != nil {
		return fmt.Errorf("error getting university: %w", err)
	}
	if uni == nil {
		return apperrors.ErrUniversityNotFound
	}
	return nil
}
