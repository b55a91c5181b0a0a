package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portsrepo "github.com/kash-money/kash_backend/internal/core/ports/repositories"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	mockCatRepo *MockCategoryRepository
	service     *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCatRepo = new(MockCategoryRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockCatRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_IncomeAppliesPositiveEffect() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	amount := decimal.NewFromFloat(100.50)

	params := portssvc.CreateTransactionParams{
		AccountID:   accountID,
		Kind:        domain.Income,
		Amount:      amount,
		Description: "Paycheck",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	// The balance delta handed to the repository must be +amount for income.
	suite.mockTxnRepo.On("CreateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimalEq(amount)).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(userID, txn.UserID)
	suite.Equal(accountID, txn.AccountID)
	suite.Equal(domain.Income, txn.Kind)
	suite.True(amount.Equal(txn.Amount))

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ExpenseAppliesNegativeEffect() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromFloat(45.25)

	params := portssvc.CreateTransactionParams{
		AccountID: uuid.NewString(),
		Kind:      domain.Expense,
		Amount:    amount,
		Date:      time.Now(),
	}

	suite.mockTxnRepo.On("CreateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimalEq(amount.Neg())).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_TransferRejected() {
	ctx := context.Background()

	params := portssvc.CreateTransactionParams{
		AccountID: uuid.NewString(),
		Kind:      domain.Transfer,
		Amount:    decimal.NewFromInt(10),
		Date:      time.Now(),
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()

	params := portssvc.CreateTransactionParams{
		AccountID: uuid.NewString(),
		Kind:      domain.Expense,
		Amount:    decimal.NewFromInt(-5),
		Date:      time.Now(),
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_SubCentPrecisionRejected() {
	ctx := context.Background()

	params := portssvc.CreateTransactionParams{
		AccountID: uuid.NewString(),
		Kind:      domain.Income,
		Amount:    decimal.RequireFromString("10.999"),
		Date:      time.Now(),
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_DanglingCategoryIsValidationError() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	params := portssvc.CreateTransactionParams{
		AccountID:  uuid.NewString(),
		CategoryID: &categoryID,
		Kind:       domain.Expense,
		Amount:     decimal.NewFromInt(20),
		Date:       time.Now(),
	}

	suite.mockCatRepo.On("FindCategoryByID", ctx, userID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, params)

	// The transaction is the resource being acted on; a bad category
	// reference is invalid input, not a missing resource.
	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)

	suite.mockCatRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	params := portssvc.CreateTransactionParams{
		AccountID: uuid.NewString(),
		Kind:      domain.Income,
		Amount:    decimal.NewFromInt(10),
		Date:      time.Now(),
	}

	suite.mockTxnRepo.On("CreateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(expectedErr).Once()

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_AmountChangeMovesBalanceByDifference() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		AccountID:     uuid.NewString(),
		Kind:          domain.Income,
		Amount:        decimal.NewFromInt(50),
		Date:          time.Now(),
	}

	newAmount := decimal.NewFromInt(70)
	params := portssvc.UpdateTransactionParams{Amount: &newAmount}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(existing, nil).Once()
	// Income 50 -> 70 must move the account balance by +20.
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == txnID && txn.Amount.Equal(newAmount)
	}), decimalEq(decimal.NewFromInt(20))).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, userID, txnID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(newAmount.Equal(updated.Amount))
	suite.Equal(domain.Income, updated.Kind)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_ExpenseAmountChange() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		AccountID:     uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromInt(30),
		Date:          time.Now(),
	}

	newAmount := decimal.NewFromInt(10)
	params := portssvc.UpdateTransactionParams{Amount: &newAmount}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(existing, nil).Once()
	// Expense 30 -> 10: old effect -30, new effect -10, so the balance
	// recovers +20.
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimalEq(decimal.NewFromInt(20))).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, userID, txnID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_UnchangedAmountYieldsZeroDelta() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		AccountID:     uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromFloat(12.50),
		Description:   "Old description",
		Date:          time.Now(),
	}

	newDesc := "New description"
	params := portssvc.UpdateTransactionParams{Description: &newDesc}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Description == newDesc
	}), decimalEq(decimal.Zero)).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, userID, txnID, params)

	suite.Require().NoError(err)
	suite.Equal(newDesc, updated.Description)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_ClearCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()
	categoryID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		AccountID:     uuid.NewString(),
		CategoryID:    &categoryID,
		Kind:          domain.Expense,
		Amount:        decimal.NewFromInt(5),
		Date:          time.Now(),
	}

	params := portssvc.UpdateTransactionParams{CategorySet: true, CategoryID: nil}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CategoryID == nil
	}), decimalEq(decimal.Zero)).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, userID, txnID, params)

	suite.Require().NoError(err)
	suite.Nil(updated.CategoryID)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCatRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateTransaction(ctx, userID, txnID, portssvc.UpdateTransactionParams{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_ReversesEffect() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		AccountID:     uuid.NewString(),
		Kind:          domain.Expense,
		Amount:        decimal.NewFromFloat(45.25),
		Date:          time.Now(),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(existing, nil).Once()
	// Deleting a 45.25 expense must credit the account 45.25, restoring the
	// balance to its pre-transaction value.
	suite.mockTxnRepo.On("DeleteTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimalEq(decimal.NewFromFloat(45.25))).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, userID, txnID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, userID, txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_InvalidKindFilter() {
	ctx := context.Background()
	badKind := domain.TransactionKind("transfer")
	filter := portsrepo.TransactionFilter{Kind: &badKind}

	txns, total, err := suite.service.ListTransactions(ctx, uuid.NewString(), filter)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.Zero(total)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_NilResultBecomesEmptySlice() {
	ctx := context.Background()
	userID := uuid.NewString()
	filter := portsrepo.TransactionFilter{Limit: 50}

	suite.mockTxnRepo.On("ListTransactions", ctx, userID, filter).Return(nil, 0, nil).Once()

	txns, total, err := suite.service.ListTransactions(ctx, userID, filter)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
	suite.Zero(total)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
