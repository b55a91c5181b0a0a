package dto

import (
	"fmt"
	"time"

	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// parseDate parses a calendar-day string in YYYY-MM-DD form.
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be in %s format", apperrors.ErrValidation, field, domain.DateFormat)
	}
	return t, nil
}

// CreateTransactionRequest defines the data needed to record a transaction.
// Transfer is not accepted here; only income and expense move balances.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	CategoryID  *string                `json:"categoryID"`
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"required"` // YYYY-MM-DD
	Tags        string                 `json:"tags"`
}

// ToParams converts the request to service-layer parameters, parsing the
// calendar date.
func (r CreateTransactionRequest) ToParams() (portssvc.CreateTransactionParams, error) {
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return portssvc.CreateTransactionParams{}, err
	}
	return portssvc.CreateTransactionParams{
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        date,
		Tags:        r.Tags,
	}, nil
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Kind and account are immutable. ClearCategory uncategorizes
// the transaction; it wins over CategoryID when both are sent.
type UpdateTransactionRequest struct {
	CategoryID    *string          `json:"categoryID"`
	ClearCategory bool             `json:"clearCategory"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   *string          `json:"description"`
	Date          *string          `json:"date"` // YYYY-MM-DD
	Tags          *string          `json:"tags"`
}

// ToParams converts the request to service-layer parameters.
func (r UpdateTransactionRequest) ToParams() (portssvc.UpdateTransactionParams, error) {
	params := portssvc.UpdateTransactionParams{
		CategoryID:  r.CategoryID,
		CategorySet: r.CategoryID != nil,
		Amount:      r.Amount,
		Description: r.Description,
		Tags:        r.Tags,
	}
	if r.ClearCategory {
		params.CategoryID = nil
		params.CategorySet = true
	}
	if r.Date != nil {
		date, err := parseDate(*r.Date, "date")
		if err != nil {
			return portssvc.UpdateTransactionParams{}, err
		}
		params.Date = &date
	}
	return params, nil
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID  *string `form:"accountID"`
	CategoryID *string `form:"categoryID"`
	Kind       *string `form:"kind" binding:"omitempty,oneof=income expense"`
	StartDate  *string `form:"startDate"`
	EndDate    *string `form:"endDate"`
	Limit      int     `form:"limit,default=50"`
	Offset     int     `form:"offset,default=0"`
}

// ToFilter converts query parameters to a repository filter, parsing dates.
func (p ListTransactionsParams) ToFilter() (portsrepo.TransactionFilter, error) {
	filter := portsrepo.TransactionFilter{
		AccountID:  p.AccountID,
		CategoryID: p.CategoryID,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
	if p.Kind != nil {
		kind := domain.TransactionKind(*p.Kind)
		filter.Kind = &kind
	}
	if p.StartDate != nil {
		start, err := parseDate(*p.StartDate, "startDate")
		if err != nil {
			return portsrepo.TransactionFilter{}, err
		}
		filter.StartDate = &start
	}
	if p.EndDate != nil {
		end, err := parseDate(*p.EndDate, "endDate")
		if err != nil {
			return portsrepo.TransactionFilter{}, err
		}
		filter.EndDate = &end
	}
	return filter, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	AccountName   string                 `json:"accountName,omitempty"`
	CategoryID    *string                `json:"categoryID"`
	CategoryName  string                 `json:"categoryName,omitempty"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description"`
	Date          string                 `json:"date"` // YYYY-MM-DD
	Tags          string                 `json:"tags"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		AccountName:   txn.AccountName,
		CategoryID:    txn.CategoryID,
		CategoryName:  txn.CategoryName,
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		Description:   txn.Description,
		Date:          txn.Date.Format(domain.DateFormat),
		Tags:          txn.Tags,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions with its total match
// count for pagination.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// ToListTransactionsResponse assembles the paginated list response.
func ToListTransactionsResponse(txns []domain.Transaction, total, limit, offset int) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{
		Transactions: res,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}
}
