package domain

// AuthProvider identifies the external identity provider a user came from.
type AuthProvider string

const (
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an authenticated owner, synced from the identity provider
// on first login. All ledger entities are scoped to a user.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (provider-agnostic UUID)
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Provider's subject claim
	AuditFields
}
