package identity

import "time"

// User is an account record as listed by the admin-only users endpoint.
type User struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	DateJoined time.Time `json:"date_joined"`
}

// Profile is the editable account profile of the signed-in user.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
