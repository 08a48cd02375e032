package users

import "time"

// User is a persisted credential record. PasswordHash is the PHC-encoded
// Argon2id digest; the plaintext is never stored. Records are immutable after
// creation: there is no password-change path.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the result of a successful authentication: the resolved user and
// a signed bearer token the client attaches to later requests.
type Session struct {
	User  *User
	Token string
}
