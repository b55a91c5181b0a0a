package models

import "time"

// AuditFields holds audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
