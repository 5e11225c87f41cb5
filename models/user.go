package models

import "time"

// User is an account of the users service.
// PasswordHash never leaves the service; use [User.Profile] for anything
// sent over the wire.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile is the public view of a user returned by the identity endpoints.
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Profile maps the account to its public view.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50,username"`
	Password  string `json:"password" validate:"required,min=3,max=64"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Phone     string `json:"phone" validate:"omitempty,max=15"`
	Location  string `json:"location" validate:"omitempty,max=150"`
}

// NewUser maps a registration request to an unverified account.
// The password hash is filled in by the caller.
func (r RegisterRequest) NewUser() User {
	return User{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Location:  r.Location,
	}
}

// Credentials is the body of login and account deletion requests.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}
