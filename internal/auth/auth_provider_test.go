package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-inventory-api/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTProvider_SignIn_Success(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "kyle@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"localId":     "uid-1",
			"email":       "kyle@example.com",
			"displayName": "Kyle",
			"idToken":     "provider-token",
		})
	}))
	defer srv.Close()

	provider := auth.NewRESTProvider(srv.URL, "test-key")
	info, err := provider.SignIn(context.Background(), "kyle@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", info.UserID)
	assert.Equal(t, "kyle@example.com", info.Email)
	assert.Equal(t, "Kyle", info.Name)
	assert.Equal(t, "provider-token", info.IDToken)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRESTProvider_SignIn_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    400,
				"message": "EMAIL_NOT_FOUND",
			},
		})
	}))
	defer srv.Close()

	provider := auth.NewRESTProvider(srv.URL, "test-key")
	_, err := provider.SignIn(context.Background(), "nobody@example.com", "pw")

	var pe *auth.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "EMAIL_NOT_FOUND", pe.Code)
}

func TestRESTProvider_SignIn_MalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	provider := auth.NewRESTProvider(srv.URL, "test-key")
	_, err := provider.SignIn(context.Background(), "kyle@example.com", "pw")

	// no decodable provider code: must not surface as a ProviderError
	require.Error(t, err)
	var pe *auth.ProviderError
	assert.False(t, errors.As(err, &pe))
}

func TestRESTProvider_SignIn_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server gone: dial fails

	provider := auth.NewRESTProvider(srv.URL, "test-key")
	_, err := provider.SignIn(context.Background(), "kyle@example.com", "pw")

	require.Error(t, err)
	var pe *auth.ProviderError
	assert.False(t, errors.As(err, &pe))
}
