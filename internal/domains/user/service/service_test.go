package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cardex/infras/otel/mocks"
	userMocks "cardex/internal/domains/user/mocks"
	"cardex/internal/domains/user/model"
	"cardex/internal/domains/user/model/dto"
	"cardex/internal/domains/user/service"
	gDto "cardex/shared/dto"
	"cardex/shared/failure"
	"cardex/shared/timezone"
)

func TestUserService_GetAll(t *testing.T) {
	t.Run("returns roster in creation order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMocks.NewMockUser(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		email := "admin@cardex.ma"
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.User, error) {
				assert.Equal(t, model.FieldCreatedDate, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.User{
					{ID: "user-1", Username: "admin", FullName: "Administrator", Role: model.RoleAdmin, Email: &email, CreatedDate: timezone.Now()},
					{ID: "user-2", Username: "manager", FullName: "Operations Manager", Role: model.RoleManager, CreatedDate: timezone.Now()},
				}, nil
			})

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, res.Users, 2)
		assert.Equal(t, "admin@cardex.ma", res.Users[0].Email)
		assert.Empty(t, res.Users[1].Email)
		assert.Empty(t, res.Users[1].LastLogin)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMocks.NewMockUser(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestUserService_Create(t *testing.T) {
	request := dto.CreateUserRequest{
		Username:  "newstaff",
		FullName:  "New Staff",
		Role:      model.RoleStaff,
		CanModify: true,
	}

	t.Run("successful creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMocks.NewMockUser(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, "newstaff", user.Username)
				assert.Equal(t, model.RoleStaff, user.Role)
				assert.True(t, user.CanModify)
				assert.False(t, user.CanDelete)
				assert.Nil(t, user.Email)

				return nil
			})

		err := svc.Create(context.Background(), request)

		assert.NoError(t, err)
	})

	t.Run("duplicate username maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMocks.NewMockUser(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		err := svc.Create(context.Background(), request)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMocks.NewMockUser(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Create(context.Background(), request)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}
