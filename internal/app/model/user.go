package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"  // regular hiker account
	RoleAdmin Role = "ADMIN" // moderation access
)

// User is an acting identity. Users are installed at login simulation and
// never edited or deleted within this system's scope.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
