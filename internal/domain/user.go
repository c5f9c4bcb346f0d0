package domain

// User is an account provisioned out of band (see cmd/adduser).
// PasswordHash is opaque to every layer above repo and is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
