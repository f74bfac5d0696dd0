package models

import "time"

// ProfileRole is an ordered role; a higher rank includes every lower one.
type ProfileRole string

const (
	RoleUser      ProfileRole = "ROLE_USER"
	RoleModerator ProfileRole = "ROLE_MODERATOR"
	RolePublisher ProfileRole = "ROLE_PUBLISHER"
	RoleAdmin     ProfileRole = "ROLE_ADMIN"
)

var roleRanks = map[ProfileRole]int{
	RoleUser:      1,
	RoleModerator: 2,
	RolePublisher: 3,
	RoleAdmin:     4,
}

// Rank returns the position of the role in the hierarchy, 0 for unknown roles.
func (r ProfileRole) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r grants everything min grants. Unknown roles grant nothing.
func (r ProfileRole) AtLeast(min ProfileRole) bool {
	rank := r.Rank()
	return rank > 0 && rank >= min.Rank()
}

// ProfileStatus tracks whether a profile may sign in.
type ProfileStatus string

const (
	ProfileStatusActive  ProfileStatus = "ACTIVE"
	ProfileStatusBlocked ProfileStatus = "BLOCKED"
)

// Profile is an author/staff account stored in the profiles table.
type Profile struct {
	ID           int64         `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Surname      string        `db:"surname" json:"surname"`
	Email        string        `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         ProfileRole   `db:"role" json:"role"`
	Status       ProfileStatus `db:"status" json:"status"`
	Visible      bool          `db:"visible" json:"visible"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}
