package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kash-money/kash_backend/internal/apperrors"
	"github.com/kash-money/kash_backend/internal/core/domain"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  *services.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	params := portssvc.CreateCategoryParams{
		Name:  "Groceries",
		Kind:  domain.CategoryExpense,
		Color: "#FF5733",
		Icon:  "cart",
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.UserID == userID && c.Name == params.Name && c.Kind == params.Kind && !c.IsDefault
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.NotEmpty(category.CategoryID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidKindRejected() {
	ctx := context.Background()
	params := portssvc.CreateCategoryParams{
		Name: "Misc",
		Kind: domain.CategoryKind("both"),
	}

	category, err := suite.service.CreateCategory(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	params := portssvc.CreateCategoryParams{
		Name: "Groceries",
		Kind: domain.CategoryExpense,
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(apperrors.ErrDuplicate).Once()

	category, err := suite.service.CreateCategory(ctx, uuid.NewString(), params)

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestListCategories_KindFilter() {
	ctx := context.Background()
	userID := uuid.NewString()
	kind := domain.CategoryIncome
	expected := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Salary", Kind: domain.CategoryIncome},
	}

	suite.mockRepo.On("ListCategories", ctx, userID, &kind).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx, userID, &kind)

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
}

func (suite *CategoryServiceTestSuite) TestListCategories_InvalidKindFilter() {
	ctx := context.Background()
	badKind := domain.CategoryKind("savings")

	categories, err := suite.service.ListCategories(ctx, uuid.NewString(), &badKind)

	suite.Require().Error(err)
	suite.Nil(categories)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCategories", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_KindUntouched() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	original := &domain.Category{
		CategoryID: categoryID,
		UserID:     userID,
		Name:       "Dining",
		Kind:       domain.CategoryExpense,
	}

	newName := "Dining Out"
	params := portssvc.UpdateCategoryParams{Name: &newName}

	suite.mockRepo.On("FindCategoryByID", ctx, userID, categoryID).Return(original, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == newName && c.Kind == domain.CategoryExpense
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, userID, categoryID, params)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(domain.CategoryExpense, updated.Kind)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockRepo.On("DeleteCategory", ctx, userID, categoryID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, userID, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
