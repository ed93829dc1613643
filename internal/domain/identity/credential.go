package identity

// Credential is the bearer credential returned by login and registration.
// Token presence is the single source of truth for authentication state;
// username and role are meaningless without a token.
type Credential struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAuthenticated reports whether the credential carries a token.
func (c Credential) IsAuthenticated() bool {
	return c.Token != ""
}
