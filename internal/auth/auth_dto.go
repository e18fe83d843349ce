package auth

// LoginRequest carries raw credentials. Deliberately no binding rules:
// empty fields pass through and the provider decides.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionStatusResponse struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}
