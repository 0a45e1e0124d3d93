package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/validator"
)

// fieldErrors accumulates validation failures so one request reports them all.
type fieldErrors []apperrors.FieldError

func validateInput(in interface{}) fieldErrors {
	return fieldErrors(validator.Struct(in))
}

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, apperrors.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError(f)
}

// lookupErr maps a gorm lookup failure to notFound or an internal error.
func lookupErr(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// writeErr maps a unique-key violation to duplicate, anything else to internal.
func writeErr(err error, duplicate *apperrors.AppError) error {
	if duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Wrap(duplicate, err)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// livePurchaseIDs is a subquery over the ids of purchases that are not deleted.
func livePurchaseIDs(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Model(&models.Purchase{}).Select("id").Scopes(models.NotDeleted)
}

// normalizeID turns empty optional ids into nil.
func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
