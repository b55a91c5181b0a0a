package domain

// CategoryKind indicates whether a category groups income or expenses.
// Kind is immutable after creation; there is no cross-kind reassignment path.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Category labels transactions for budgeting and reporting. Deleting a
// category never deletes financial history; transactions and budgets that
// reference it have their reference nulled out instead.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	UserID     string       `json:"userID"`     // Owning user
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
	Color      string       `json:"color"`
	Icon       string       `json:"icon"`
	IsDefault  bool         `json:"isDefault"`
	AuditFields
}
