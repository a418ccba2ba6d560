package domain

// User is the authenticated caller, reconstructed from token claims by the
// auth middleware. Ownership checks always use Id, never Username.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
}
