package models

// LoginRequest is the payload for POST /api/auth/login. Exactly one of
// Username or Email is set, depending on whether the identifier entered
// by the user contains an "@".
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password_strength"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

// RefreshRequest is the payload for POST /api/auth/refresh and
// POST /api/auth/logout. Both endpoints take the refresh token only.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ProfileUpdate carries a partial profile mutation for PUT /api/auth/me.
// Nil fields are omitted so the server leaves them untouched.
type ProfileUpdate struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

// ChangePasswordRequest is the payload for POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword  string `json:"current_password" validate:"required"`
	NewPassword      string `json:"new_password" validate:"required,password_strength"`
	LogoutAllDevices bool   `json:"logout_all_devices"`
}
