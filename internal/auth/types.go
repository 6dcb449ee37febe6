package auth

import "time"

// Roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the item stored in the users table. PasswordHash never leaves this
// package.
type User struct {
	Email        string    `dynamodbav:"email"` // PK
	UserID       string    `dynamodbav:"user_id"`
	Name         string    `dynamodbav:"name"`
	PasswordHash string    `dynamodbav:"password_hash"`
	Role         string    `dynamodbav:"role"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
}

// Public is the caller-visible shape of a user.
type Public struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Public strips credentials from a User.
func (u *User) Public() Public {
	return Public{UserID: u.UserID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Identity is the authenticated caller the boundary layer hands to the core.
type Identity struct {
	UserID string
	Email  string
}
