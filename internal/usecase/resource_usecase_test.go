package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shario-backend/internal/domain"
	"shario-backend/internal/usecase"
	"shario-backend/pkg/apperror"
)

// Mock Repositories

type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) Create(ctx context.Context, r *domain.Resource) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockResourceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceRepo) Fetch(ctx context.Context, filter domain.ResourceFilter, limit, offset int64) ([]domain.Resource, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Resource), args.Get(1).(int64), args.Error(2)
}

func (m *MockResourceRepo) Update(ctx context.Context, id primitive.ObjectID, upd domain.ResourceUpdate) (*domain.Resource, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResourceRepo) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (bool, int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

type MockCategorizer struct {
	mock.Mock
}

func (m *MockCategorizer) Categorize(ctx context.Context, title, description string) domain.Enrichment {
	args := m.Called(ctx, title, description)
	return args.Get(0).(domain.Enrichment)
}

func validInput() domain.CreateResourceInput {
	return domain.CreateResourceInput{
		Title:       "X",
		Description: "Y",
		URL:         "http://a",
		Type:        "article",
		Skills:      []string{"js"},
	}
}

func TestCreateResourceMergesEnrichment(t *testing.T) {
	mockRepo := new(MockResourceRepo)
	mockCat := new(MockCategorizer)
	uc := usecase.NewResourceUsecase(mockRepo, mockCat)
	userID := primitive.NewObjectID()

	mockCat.On("Categorize", mock.Anything, "X", "Y").Return(domain.Enrichment{
		Category: "Web Development",
		Tags:     []string{"frontend"},
	})

	var stored *domain.Resource
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resource")).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Resource)
	})

	resource, err := uc.Create(context.Background(), userID, validInput())
	assert.NoError(t, err)
	assert.NotNil(t, stored)

	assert.Equal(t, []string{"js", "Web Development"}, resource.Skills)
	assert.Equal(t, []string{"frontend"}, resource.Tags)
	assert.Equal(t, domain.DifficultyBeginner, resource.Difficulty)
	assert.Equal(t, domain.StatusPublished, resource.Status)
	assert.True(t, resource.AIEnriched)
	assert.Equal(t, userID, resource.UserID)

	mockCat.AssertNumberOfCalls(t, "Categorize", 1)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateResourceMergeDeduplicates(t *testing.T) {
	mockRepo := new(MockResourceRepo)
	mockCat := new(MockCategorizer)
	uc := usecase.NewResourceUsecase(mockRepo, mockCat)

	// Category already present in caller-supplied skills, tags overlap too.
	in := validInput()
	in.Skills = []string{"js", "Web Development", "js"}
	in.Tags = []string{"frontend", "frontend"}

	mockCat.On("Categorize", mock.Anything, mock.Anything, mock.Anything).Return(domain.Enrichment{
		Category: "Web Development",
		Tags:     []string{"frontend", "webdev"},
	})
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resource, err := uc.Create(context.Background(), primitive.NewObjectID(), in)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"js", "Web Development"}, resource.Skills)
	assert.ElementsMatch(t, []string{"frontend", "webdev"}, resource.Tags)
}

func TestCreateResourceDegradedEnrichment(t *testing.T) {
	mockRepo := new(MockResourceRepo)
	mockCat := new(MockCategorizer)
	uc := usecase.NewResourceUsecase(mockRepo, mockCat)

	// The categorizer never errors; a failed upstream call surfaces as the
	// default result and the creation must still succeed.
	mockCat.On("Categorize", mock.Anything, mock.Anything, mock.Anything).Return(domain.Enrichment{
		Category: "Other",
		Degraded: true,
	})
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resource, err := uc.Create(context.Background(), primitive.NewObjectID(), validInput())
	assert.NoError(t, err)
	assert.Equal(t, []string{"js", "Other"}, resource.Skills)
	assert.Empty(t, resource.Tags)
	assert.True(t, resource.AIEnriched)
}

func TestCreateResourceValidation(t *testing.T) {
	mockRepo := new(MockResourceRepo)
	mockCat := new(MockCategorizer)
	uc := usecase.NewResourceUsecase(mockRepo, mockCat)
	userID := primitive.NewObjectID()

	t.Run("missing required fields", func(t *testing.T) {
		in := validInput()
		in.Skills = nil
		_, err := uc.Create(context.Background(), userID, in)
		assert.True(t, apperror.Is(err, http.StatusBadRequest))
	})

	t.Run("invalid type", func(t *testing.T) {
		in := validInput()
		in.Type = "webinar"
		_, err := uc.Create(context.Background(), userID, in)
		assert.True(t, apperror.Is(err, http.StatusBadRequest))
	})

	t.Run("negative duration", func(t *testing.T) {
		in := validInput()
		in.Duration = -5
		_, err := uc.Create(context.Background(), userID, in)
		assert.True(t, apperror.Is(err, http.StatusBadRequest))
	})

	// No store mutation and no enrichment call on invalid input
	mockRepo.AssertNotCalled(t, "Create")
	mockCat.AssertNotCalled(t, "Categorize")
}

func TestUpdateOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	existing := &domain.Resource{ID: resourceID, UserID: owner, Status: domain.StatusPublished}

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockRepo := new(MockResourceRepo)
		uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
		mockRepo.On("GetByID", mock.Anything, resourceID).Return(existing, nil)

		title := "hijacked"
		_, err := uc.Update(context.Background(), stranger, resourceID, domain.ResourceUpdate{Title: &title})
		assert.True(t, apperror.Is(err, http.StatusForbidden))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("owner may update", func(t *testing.T) {
		mockRepo := new(MockResourceRepo)
		uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
		mockRepo.On("GetByID", mock.Anything, resourceID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, resourceID, mock.Anything).Return(existing, nil)

		title := "better title"
		_, err := uc.Update(context.Background(), owner, resourceID, domain.ResourceUpdate{Title: &title})
		assert.NoError(t, err)
	})

	t.Run("unknown resource", func(t *testing.T) {
		mockRepo := new(MockResourceRepo)
		uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
		mockRepo.On("GetByID", mock.Anything, resourceID).Return(nil, domain.ErrNotFound)

		title := "whatever"
		_, err := uc.Update(context.Background(), owner, resourceID, domain.ResourceUpdate{Title: &title})
		assert.True(t, apperror.Is(err, http.StatusNotFound))
	})
}

func TestDeleteOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()
	existing := &domain.Resource{ID: resourceID, UserID: owner}

	mockRepo := new(MockResourceRepo)
	uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
	mockRepo.On("GetByID", mock.Anything, resourceID).Return(existing, nil)
	mockRepo.On("Delete", mock.Anything, resourceID).Return(nil)

	err := uc.Delete(context.Background(), stranger, resourceID)
	assert.True(t, apperror.Is(err, http.StatusForbidden))
	mockRepo.AssertNotCalled(t, "Delete")

	err = uc.Delete(context.Background(), owner, resourceID)
	assert.NoError(t, err)
}

func TestToggleLike(t *testing.T) {
	userID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	t.Run("first toggle likes", func(t *testing.T) {
		mockRepo := new(MockResourceRepo)
		uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
		mockRepo.On("ToggleLike", mock.Anything, resourceID, userID).Return(true, int64(1), nil)

		liked, likes, err := uc.ToggleLike(context.Background(), userID, resourceID)
		assert.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, int64(1), likes)
	})

	t.Run("second toggle unlikes", func(t *testing.T) {
		mockRepo := new(MockResourceRepo)
		uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
		mockRepo.On("ToggleLike", mock.Anything, resourceID, userID).Return(false, int64(0), nil)

		liked, likes, err := uc.ToggleLike(context.Background(), userID, resourceID)
		assert.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, int64(0), likes)
	})

	t.Run("unknown resource", func(t *testing.T) {
		mockRepo := new(MockResourceRepo)
		uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
		mockRepo.On("ToggleLike", mock.Anything, resourceID, userID).Return(false, int64(0), domain.ErrNotFound)

		_, _, err := uc.ToggleLike(context.Background(), userID, resourceID)
		assert.True(t, apperror.Is(err, http.StatusNotFound))
	})
}

func TestListPaginationClamping(t *testing.T) {
	mockRepo := new(MockResourceRepo)
	uc := usecase.NewResourceUsecase(mockRepo, new(MockCategorizer))
	filter := domain.ResourceFilter{Type: "video"}

	mockRepo.On("Fetch", mock.Anything, filter, int64(20), int64(0)).Return([]domain.Resource{}, int64(2), nil).Once()
	_, total, err := uc.List(context.Background(), filter, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	mockRepo.On("Fetch", mock.Anything, filter, int64(10), int64(20)).Return([]domain.Resource{}, int64(2), nil).Once()
	_, total, err = uc.List(context.Background(), filter, 3, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Oversized page size is capped
	mockRepo.On("Fetch", mock.Anything, filter, int64(100), int64(0)).Return([]domain.Resource{}, int64(2), nil).Once()
	_, _, err = uc.List(context.Background(), filter, 1, 5000)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}
