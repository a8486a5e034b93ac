package dto

// SignupRequest is the member registration payload.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Name     string `json:"name" binding:"required,min=1,max=128"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginRequest is the member login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
}

// ForgotPasswordRequest identifies the account to reset by email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email,max=128"`
}
