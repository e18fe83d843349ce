package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// UserInfo is what the identity provider returns on a successful
// sign-in. Treated opaquely beyond identification fields.
type UserInfo struct {
	UserID  string
	Email   string
	Name    string
	IDToken string
}

// ProviderError is a failure the identity provider itself reported, as
// opposed to a transport failure. Code is the provider's stable symbolic
// error code (e.g. "EMAIL_NOT_FOUND").
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: %s", e.Code)
}

//go:generate mockgen -source=auth_provider.go -destination=../mock/auth/provider_mock.go -package=mock
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (UserInfo, error)
}

// restProvider talks to the hosted provider's password sign-in endpoint
// (Identity Toolkit style). Exactly one HTTP round trip per call; no
// retries, no internal timeout beyond the client's.
type restProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTProvider(baseURL, apiKey string) IdentityProvider {
	return &restProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type signInErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *restProvider) SignIn(ctx context.Context, email, password string) (UserInfo, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return UserInfo{}, err
	}

	url := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", p.baseURL, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return UserInfo{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return UserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody signInErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error.Message == "" {
			return UserInfo{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
		}
		return UserInfo{}, &ProviderError{
			Code:    errBody.Error.Message,
			Message: errBody.Error.Message,
		}
	}

	var body signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return UserInfo{}, err
	}

	return UserInfo{
		UserID:  body.LocalID,
		Email:   body.Email,
		Name:    body.DisplayName,
		IDToken: body.IDToken,
	}, nil
}
