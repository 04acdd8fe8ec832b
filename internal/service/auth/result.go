package auth

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	Editor      string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int
}
