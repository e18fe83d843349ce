package catalogerrors

import (
	"net/http"

	"go-inventory-api/internal/pkg/apperror"
)

var ErrItemNotFound = apperror.New(
	apperror.CodeNotFound,
	"Inventory item not found",
	http.StatusNotFound,
)
