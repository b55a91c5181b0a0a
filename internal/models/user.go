package models

// User mirrors the users table.
type User struct {
	UserID         string
	Email          string
	Name           string
	AuthProvider   string
	ProviderUserID string
	AuditFields
}
