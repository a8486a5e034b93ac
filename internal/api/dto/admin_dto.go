package dto

// AdminLoginRequest is the fixed-credential admin login payload.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

// AdminLoginResponse carries the issued admin token.
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// AdminUserItem is one row of the admin user listing.
type AdminUserItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
