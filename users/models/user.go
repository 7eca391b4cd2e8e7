package models

// User represents a registered account. The password column always holds a
// bcrypt hash and is never serialized in responses.
type User struct {
	Username  string `json:"username" db:"username"`
	Password  string `json:"-" db:"password"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	PhotoURL  string `json:"photoUrl" db:"photo_url"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// CreateUserRequest is the payload for user creation. Password arrives in
// plaintext and is hashed before it reaches the repository.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photoUrl"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UserDetail is a user together with the ids of jobs they applied to.
type UserDetail struct {
	User
	Jobs []int64 `json:"jobs"`
}
