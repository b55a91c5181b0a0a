package models

// CategoryKind mirrors the categories.kind enum.
type CategoryKind string

// Category mirrors the categories table.
type Category struct {
	CategoryID string
	UserID     string
	Name       string
	Kind       CategoryKind
	Color      string
	Icon       string
	IsDefault  bool
	AuditFields
}
