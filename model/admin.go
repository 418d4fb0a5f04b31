package model

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Page          string `json:"page"`
}
