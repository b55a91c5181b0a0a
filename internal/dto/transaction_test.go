package dto_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequest_ToParams(t *testing.T) {
	req := dto.CreateTransactionRequest{
		AccountID: uuid.NewString(),
		Kind:      domain.Expense,
		Amount:    decimal.NewFromFloat(12.50),
		Date:      "2025-06-15",
	}

	params, err := req.ToParams()
	require.NoError(t, err)
	assert.Equal(t, 2025, params.Date.Year())
	assert.Equal(t, 15, params.Date.Day())
}

func TestCreateTransactionRequest_ToParams_BadDate(t *testing.T) {
	req := dto.CreateTransactionRequest{
		AccountID: uuid.NewString(),
		Kind:      domain.Expense,
		Amount:    decimal.NewFromInt(5),
		Date:      "15/06/2025",
	}

	_, err := req.ToParams()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateTransactionRequest_ClearCategoryWins(t *testing.T) {
	categoryID := uuid.NewString()
	req := dto.UpdateTransactionRequest{
		CategoryID:    &categoryID,
		ClearCategory: true,
	}

	params, err := req.ToParams()
	require.NoError(t, err)
	assert.True(t, params.CategorySet)
	assert.Nil(t, params.CategoryID)
}

func TestUpdateTransactionRequest_NoCategoryFieldsLeavesCategoryUntouched(t *testing.T) {
	desc := "new description"
	req := dto.UpdateTransactionRequest{Description: &desc}

	params, err := req.ToParams()
	require.NoError(t, err)
	assert.False(t, params.CategorySet)
	assert.Nil(t, params.CategoryID)
}

func TestListTransactionsParams_ToFilter(t *testing.T) {
	kind := "income"
	start := "2025-06-01"
	end := "2025-06-30"
	p := dto.ListTransactionsParams{
		Kind:      &kind,
		StartDate: &start,
		EndDate:   &end,
		Limit:     50,
	}

	filter, err := p.ToFilter()
	require.NoError(t, err)
	require.NotNil(t, filter.Kind)
	assert.Equal(t, domain.Income, *filter.Kind)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.True(t, filter.StartDate.Before(*filter.EndDate))
}

func TestListTransactionsParams_ToFilter_BadDate(t *testing.T) {
	bad := "June 1st"
	p := dto.ListTransactionsParams{StartDate: &bad}

	_, err := p.ToFilter()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
