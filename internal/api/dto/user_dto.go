package dto

// ProfileResponse is the member's own public record.
type ProfileResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UpdateProfileRequest updates name and email together.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=128"`
	Email string `json:"email" binding:"required,email,max=128"`
}

// ChangePasswordRequest rotates the member's password. The field names are
// camelCase on the wire.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,min=1,max=128"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=128"`
}
