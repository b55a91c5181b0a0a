package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	params := portssvc.CreateAccountParams{
		Name:     "Main Checking",
		Type:     domain.Bank,
		Balance:  decimal.NewFromFloat(1250.75),
		Currency: "EUR",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(userID, account.UserID)
	suite.Equal(params.Name, account.Name)
	suite.Equal(params.Type, account.Type)
	suite.True(params.Balance.Equal(account.Balance))
	suite.True(account.IsActive)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeOpeningBalanceAllowed() {
	ctx := context.Background()
	params := portssvc.CreateAccountParams{
		Name:     "Visa",
		Type:     domain.CreditCard,
		Balance:  decimal.NewFromFloat(-320.40),
		Currency: "EUR",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), params)

	suite.Require().NoError(err)
	suite.True(account.Balance.IsNegative())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidTypeRejected() {
	ctx := context.Background()
	params := portssvc.CreateAccountParams{
		Name:     "Shoebox",
		Type:     domain.AccountType("mattress"),
		Balance:  decimal.Zero,
		Currency: "EUR",
	}

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SubCentBalanceRejected() {
	ctx := context.Background()
	params := portssvc.CreateAccountParams{
		Name:     "Fractions",
		Type:     domain.Cash,
		Balance:  decimal.RequireFromString("0.001"),
		Currency: "EUR",
	}

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, userID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, userID, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilResultBecomesEmptySlice() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListAccounts", ctx, userID).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	initialTime := time.Now().Add(-time.Hour)

	original := &domain.Account{
		AccountID: accountID,
		UserID:    userID,
		Name:      "Old Name",
		Type:      domain.Savings,
		Balance:   decimal.NewFromInt(900),
		Currency:  "EUR",
		Color:     "#00FF00",
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     initialTime,
			LastUpdatedAt: initialTime,
		},
	}

	newName := "Rainy Day Fund"
	params := portssvc.UpdateAccountParams{Name: &newName}

	suite.mockRepo.On("FindAccountByID", ctx, userID, accountID).Return(original, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == accountID &&
			acc.Name == newName &&
			acc.Color == original.Color &&
			acc.Balance.Equal(original.Balance) &&
			acc.LastUpdatedAt.After(initialTime)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, userID, accountID, params)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("DeactivateAccount", ctx, userID, accountID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, userID, accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	validationErr := fmt.Errorf("%w: account %s already inactive", apperrors.ErrValidation, accountID)

	suite.mockRepo.On("DeactivateAccount", ctx, userID, accountID, mock.AnythingOfType("time.Time")).Return(validationErr).Once()

	err := suite.service.DeactivateAccount(ctx, userID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeactivateAccount", ctx, userID, accountID, mock.AnythingOfType("time.Time")).Return(expectedErr).Once()

	err := suite.service.DeactivateAccount(ctx, userID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
