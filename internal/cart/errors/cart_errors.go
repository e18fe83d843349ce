package carterrors

import (
	"errors"
	"net/http"

	"go-inventory-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be a positive integer",
		http.StatusBadRequest,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in catalog",
		http.StatusNotFound,
	)

	ErrInvalidRequest = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart request",
		http.StatusBadRequest,
	)
)

func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrInvalidRequest
	}

	for _, fe := range verrs {
		if fe.Field() == "Qty" {
			return ErrInvalidQty
		}
	}

	return ErrInvalidRequest
}
