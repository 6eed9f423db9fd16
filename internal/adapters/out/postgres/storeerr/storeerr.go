// Package storeerr classifies database failures for the repositories.
package storeerr

import (
	"errors"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap turns a GORM or driver failure into an errs.PersistenceError.
// Domain errors and nil pass through unchanged.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	return errs.NewPersistenceError(operation, err)
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and
// everything else through Wrap.
func NotFound(operation, paramName string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return Wrap(operation, err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrObjectNotFound,
		errs.ErrConflict,
		errs.ErrInvalidTransition,
		errs.ErrPersistence,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
