package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bulkup/internal/domain/entity"
	domainerrors "bulkup/internal/domain/errors"
	"bulkup/internal/domain/repository"
	mockRepo "bulkup/internal/mocks/repository"
	"bulkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(txManager, logger)

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func testProfile(userID uuid.UUID) *entity.Profile {
	return &entity.Profile{
		UserID:        userID,
		Age:           25,
		Gender:        entity.GenderMale,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: entity.ActivityModerate,
		BodyGoal:      entity.GoalLeanMuscle,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{
		ID:      userID,
		Email:   "test@example.com",
		Profile: testProfile(userID),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output.Profile)
	require.NotNil(t, output.Targets)
	assert.Equal(t, storedUser.Profile, output.Profile)
	// 25y / male / 175cm / 70kg / moderate / lean_muscle
	assert.Equal(t, 2872, output.Targets.DailyCalories)
	assert.Equal(t, 140, output.Targets.Protein)
}

func TestProfileService_GetProfile_NotConfigured(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{ID: userID, Email: "test@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Nil(t, output.Profile)
	assert.Nil(t, output.Targets)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		Age:           25,
		Gender:        "male",
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: "moderate",
		BodyGoal:      "bulk_muscle",
	}

	storedUser := &entity.User{ID: userID, Email: "test@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					require.NotNil(t, user.Profile)
					assert.Equal(t, entity.GoalBulkMuscle, user.Profile.BodyGoal)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, output.Profile)
	require.NotNil(t, output.Targets)
	assert.Equal(t, entity.ActivityModerate, output.Profile.ActivityLevel)
	// bulk_muscle carries a 500 kcal surplus over maintenance.
	assert.Equal(t, 3172, output.Targets.DailyCalories)
	assert.Equal(t, 175, output.Targets.Protein)
}

func TestProfileService_UpdateProfile_DefaultsActivityToSedentary(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		Age:      30,
		Gender:   "female",
		HeightCm: 160,
		WeightKg: 55,
		BodyGoal: "lean_muscle",
	}

	storedUser := &entity.User{ID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ActivitySedentary, output.Profile.ActivityLevel)
}

func TestProfileService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		Age:      25,
		Gender:   "male",
		HeightCm: 175,
		WeightKg: 70,
		BodyGoal: "lean_muscle",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetTargets_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{
		ID:      userID,
		Profile: testProfile(userID),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	targets, err := fx.service.GetTargets(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2872, targets.DailyCalories)
}

func TestProfileService_GetTargets_ProfileNotConfigured(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{ID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	targets, err := fx.service.GetTargets(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, targets)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotConfigured)
}
