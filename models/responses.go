package models

// AuthResponse is the JSON envelope returned by every auth API endpoint.
// Success=false carries a server-provided Message; token and user fields
// are only populated on calls that establish or refresh a session.
type AuthResponse struct {
	// Success reports whether the operation succeeded application-side.
	Success bool `json:"success"`

	// Message is the optional human-readable outcome description.
	Message string `json:"message,omitempty"`

	// User is the account record associated with the session, when the
	// endpoint returns one (login, register, profile calls).
	User *User `json:"user,omitempty"`

	// AccessToken is the short-lived bearer credential.
	AccessToken string `json:"access_token,omitempty"`

	// RefreshToken is the longer-lived credential used only to mint a
	// new access token.
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType names the authorization scheme, normally "bearer".
	TokenType string `json:"token_type,omitempty"`
}

// MutationResponse is the envelope returned by article GraphQL mutations.
type MutationResponse struct {
	// Success reports whether the mutation was applied.
	Success bool `json:"success"`

	// Message is the server-provided outcome description.
	Message string `json:"message"`

	// Article is the affected record, present on create and update.
	Article *Article `json:"article,omitempty"`
}
