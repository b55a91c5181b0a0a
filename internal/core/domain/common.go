package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DateFormat is the wire format for calendar dates. Transactions and budgets
// carry dates with no time-of-day component.
const DateFormat = "2006-01-02"
