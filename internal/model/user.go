package model

// User is a row of the users table.
//
// Password is stored exactly as given and never serialized.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser is the payload for inserting a user.
type NewUser struct {
	Name     string
	Email    string
	Password string
}
