package models

import "time"

// User defines a login identity based on the 'users' table. Student accounts
// link to a students row carrying the enrollment snapshot.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"admin@college.edu"`
	Password  string    `json:"-" db:"password"`
	FullName  string    `json:"fullName" db:"full_name" example:"System Administrator"`
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"ADMIN"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
