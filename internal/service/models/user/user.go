package user

// User is the authentication identity owned by the external user component.
// The order flow only reads it to resolve an email.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
