package models

import "time"

// Role classifies what an actor is allowed to do. Fine-grained permission
// checks belong to the access-control layer; the core only distinguishes
// requesters from admins.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the already-authenticated identity attached to a request by the
// auth middleware. The core never authenticates; it only consumes this.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Admin reports whether the actor carries the admin role.
func (a Actor) Admin() bool {
	return a.Role == RoleAdmin
}

// User is the minimal identity record the core reads: id and role. Profile
// management lives in the auth subsystem, not here.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
