package models

// User represents an account entity returned by the auth API.
// It contains identity attributes and authorization flags.
// The client never mutates a User locally; it is only replaced wholesale
// by a fresh server response.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name chosen at registration.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the optional family name of the user.
	LastName string `json:"last_name,omitempty"`

	// IsAdmin reports whether the account carries administrative
	// privileges. Drives the admin route annotation on the client.
	IsAdmin bool `json:"is_admin"`

	// IsActive reports whether the account is enabled server-side.
	IsActive bool `json:"is_active"`
}

// DisplayName returns the user's full name when both name parts are set,
// falling back to the username otherwise.
func (u User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}
