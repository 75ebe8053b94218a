package auth

type LoginRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	ExpiredAt   int64  `json:"expired_at"`
}
