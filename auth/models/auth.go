package models

// LoginRequest is the payload for POST /auth/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a signed JWT back to the caller.
type TokenResponse struct {
	Token string `json:"token"`
}
