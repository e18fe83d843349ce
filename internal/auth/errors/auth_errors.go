package autherrors

import (
	"net/http"

	"go-inventory-api/internal/pkg/apperror"
)

// Codes for the login failure taxonomy. The messages below are part of
// the client contract and must not be reworded.
const (
	CodeWrongCredentials = "WRONG_CREDENTIALS"
	CodeAccountNotFound  = "ACCOUNT_NOT_FOUND"
	CodeLoginFailed      = "LOGIN_FAILED"
)

var (
	ErrWrongCredentials = apperror.New(
		CodeWrongCredentials,
		"Incorrect password. Please try again. If you can not remember your password, contact your admin for password recovery.",
		http.StatusUnauthorized,
	)

	ErrAccountNotFound = apperror.New(
		CodeAccountNotFound,
		"User not found. Contact your admin for account setup.",
		http.StatusNotFound,
	)

	// ErrLoginUnexpected covers transport-level failures where the
	// provider never reported a code.
	ErrLoginUnexpected = apperror.New(
		CodeLoginFailed,
		"An unexpected error occurred. Please try again later.",
		http.StatusBadGateway,
	)

	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid authentication token",
		http.StatusBadRequest,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate authentication token",
		http.StatusInternalServerError,
	)
)
