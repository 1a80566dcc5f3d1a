// internal/models/user.go
package models

import "time"

// User is a registered applicant. Email is unique across all users.
type User struct {
	ID           string    `json:"_id" bson:"_id"`
	FullName     string    `json:"fullName" bson:"fullName"`
	Email        string    `json:"email" bson:"email"`
	Mobile       string    `json:"mobile,omitempty" bson:"mobile,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the shape returned to clients after register/login.
type PublicUser struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile,omitempty"`
}

// Public strips credential material from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Mobile:   u.Mobile,
	}
}
