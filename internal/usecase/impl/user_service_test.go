package impl

import (
	"context"
	"testing"

	"spotlight/internal/domain/entity"
	"spotlight/internal/domain/repository"
	mockRepo "spotlight/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_OnUserCreated_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		CreateUser(ctx, &entity.User{ID: "uid-123"}).
		Return(nil)

	require.NoError(t, service.OnUserCreated(ctx, "uid-123"))
}

func TestUserService_OnUserCreated_EmptyID(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	err := service.OnUserCreated(context.Background(), "")
	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_OnUserDeleted_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		DeleteUser(ctx, "uid-123").
		Return(nil)

	require.NoError(t, service.OnUserDeleted(ctx, "uid-123"))
}

// A re-delivered deletion hook finds the user already gone; it must succeed
// so the push is acked instead of retried forever.
func TestUserService_OnUserDeleted_Redelivered(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		DeleteUser(ctx, "uid-123").
		Return(repository.ErrUserNotFound)

	require.NoError(t, service.OnUserDeleted(ctx, "uid-123"))
}

func TestUserService_OnUserDeleted_RepositoryError(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		DeleteUser(ctx, "uid-123").
		Return(errors.New("database error"))

	err := service.OnUserDeleted(ctx, "uid-123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete user")
}
