package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// FormStatus is the lifecycle state of a feedback form
type FormStatus string

const (
	FormStatusActive FormStatus = "active"
	FormStatusClosed FormStatus = "closed"
)

// FormType distinguishes theory and lab/practical question banks
type FormType string

const (
	FormTypeTheory FormType = "theory"
	FormTypeLab    FormType = "lab"
)
