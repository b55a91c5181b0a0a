package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/kash-money/kash_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, Email: "a@example.com", Name: "A"}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestSyncOAuthUser_ExistingUnchangedProfile() {
	ctx := context.Background()
	subject := "google-sub-123"
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "a@example.com",
		Name:           "A",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: subject,
	}

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, subject).Return(existing, nil).Once()

	user, err := suite.service.SyncOAuthUser(ctx, domain.ProviderGoogle, subject, "a@example.com", "A")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	// Nothing changed, so no write should happen.
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSyncOAuthUser_RefreshesChangedProfile() {
	ctx := context.Background()
	subject := "google-sub-123"
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "old@example.com",
		Name:           "Old Name",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: subject,
	}

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, subject).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == existing.UserID && u.Email == "new@example.com" && u.Name == "New Name"
	})).Return(nil).Once()

	user, err := suite.service.SyncOAuthUser(ctx, domain.ProviderGoogle, subject, "new@example.com", "New Name")

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Email)
	suite.Equal("New Name", user.Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSyncOAuthUser_FirstSignInCreatesUser() {
	ctx := context.Background()
	subject := "google-sub-456"

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, subject).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "b@example.com" && u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID == subject
	})).Return(nil).Once()

	user, err := suite.service.SyncOAuthUser(ctx, domain.ProviderGoogle, subject, "b@example.com", "B")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSyncOAuthUser_InsertRaceFallsBackToFetch() {
	ctx := context.Background()
	subject := "google-sub-789"
	winner := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "c@example.com",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: subject,
	}

	// A concurrent first sign-in committed between our lookup and insert.
	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, subject).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, subject).Return(winner, nil).Once()

	user, err := suite.service.SyncOAuthUser(ctx, domain.ProviderGoogle, subject, "c@example.com", "C")

	suite.Require().NoError(err)
	suite.Equal(winner.UserID, user.UserID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSyncOAuthUser_SaveError() {
	ctx := context.Background()
	subject := "google-sub-000"
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, subject).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	user, err := suite.service.SyncOAuthUser(ctx, domain.ProviderGoogle, subject, "d@example.com", "D")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
