package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cardex/config"
	"cardex/infras/otel/mocks"
	s3Mocks "cardex/infras/s3/mocks"
	auditModel "cardex/internal/domains/audit/model"
	auditMocks "cardex/internal/domains/audit/mocks"
	clientMocks "cardex/internal/domains/client/mocks"
	"cardex/internal/domains/client/model"
	"cardex/internal/domains/client/model/dto"
	"cardex/internal/domains/client/service"
	noteMocks "cardex/internal/domains/note/mocks"
	noteModel "cardex/internal/domains/note/model"
	noteDto "cardex/internal/domains/note/model/dto"
	userMocks "cardex/internal/domains/user/mocks"
	userModel "cardex/internal/domains/user/model"
	cacheMocks "cardex/shared/cache/mocks"
	"cardex/shared/failure"
)

type serviceMocks struct {
	repo     *clientMocks.MockClient
	traveler *clientMocks.MockTraveler
	audit    *auditMocks.MockLog
	note     *noteMocks.MockNote
	user     *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newService(ctrl *gomock.Controller) (service.Client, serviceMocks) {
	m := serviceMocks{
		repo:     clientMocks.NewMockClient(ctrl),
		traveler: clientMocks.NewMockTraveler(ctrl),
		audit:    auditMocks.NewMockLog(ctrl),
		note:     noteMocks.NewMockNote(ctrl),
		user:     userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.traveler, m.audit, m.note, m.user, cfg, m.cache, m.s3, mocks.NewOtel())

	return svc, m
}

func allowAsyncCache(m serviceMocks) {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestClientService_Submit(t *testing.T) {
	validRequest := dto.SubmitClientRequest{
		FullName:    "John Smith",
		Email:       "john@example.com",
		Phone:       "+1234567890",
		GDPRConsent: true,
		AdditionalTravelers: []dto.TravelerRequest{
			{Name: "Kid Smith"},
			{TravelerNumber: 5, Name: "Other Smith"},
		},
	}

	t.Run("successful submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncCache(m)

		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, client model.Client, travelers []model.Traveler, entry auditModel.LogEntry) error {
				assert.NotEmpty(t, client.ID)
				assert.Equal(t, model.StatusPending, client.Status)

				assert.Len(t, travelers, 2)
				assert.Equal(t, 1, travelers[0].TravelerNumber, "missing ordinal defaults to position")
				assert.Equal(t, 5, travelers[1].TravelerNumber, "caller ordinal preserved")
				assert.Equal(t, client.ID, travelers[0].ClientID)

				assert.Equal(t, auditModel.ActionCreated, entry.Action)
				assert.Equal(t, auditModel.SystemActor, entry.ModifiedBy)
				assert.Equal(t, client.ID, entry.ClientID)

				return nil
			})

		res, err := svc.Submit(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.ClientID)
	})

	t.Run("attachment failure never fails the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncCache(m)

		req := validRequest
		req.AdditionalTravelers = nil
		req.AttachedDocument = &dto.AttachmentPayload{
			Name: "doc.pdf",
			Data: "data:application/pdf;base64,JVBERi0=",
		}

		m.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, client model.Client, _ []model.Traveler, _ auditModel.LogEntry) error {
				assert.Empty(t, client.AttachedDocument)

				return nil
			})

		res, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("malformed attachment payload is swallowed without upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncCache(m)

		req := validRequest
		req.AdditionalTravelers = nil
		req.AttachedDocument = &dto.AttachmentPayload{Name: "doc.pdf", Data: "!!!not-base64!!!"}

		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate submission maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := svc.Submit(context.Background(), validRequest)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Submit(context.Background(), validRequest)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestClientService_Get(t *testing.T) {
	t.Run("bundles record with notes and history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncCache(m)

		m.cache.EXPECT().
			Get(gomock.Any(), "client:get:client-1", gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Client{ID: "client-1", FullName: "John Smith", DietaryRestrictions: "[]", AccessibilityNeeds: "[]"}, nil)

		m.note.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		m.audit.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]auditModel.LogEntry{{ID: "log-1", Action: auditModel.ActionCreated}}, nil)

		res, err := svc.Get(context.Background(), "client-1")

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "client-1", res.Client.ID)
		assert.Len(t, res.History, 1)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Client{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestClientService_GetTravelers(t *testing.T) {
	t.Run("unknown client is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetTravelers(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("returns travelers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.traveler.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Traveler{
				{ID: "t-1", TravelerNumber: 1, Name: "Kid Smith", DietaryRestrictions: "[]"},
			}, nil)

		res, err := svc.GetTravelers(context.Background(), "client-1")

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, res.Travelers, 1)
		assert.Equal(t, "Kid Smith", res.Travelers[0].Name)
	})
}

func TestClientService_Update(t *testing.T) {
	status := "confirmed"
	priority := model.PriorityNormal

	request := dto.UpdateClientRequest{
		ModifiedBy: "admin",
		Status:     &status,
		Priority:   &priority,
	}

	staff := userModel.User{ID: "user-1", Username: "admin", CanModify: true}

	t.Run("unknown user is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.user.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.Update(context.Background(), request, "client-1")

		assert.ErrorIs(t, err, failure.InsufficientPermissions)
	})

	t.Run("user without modify capability is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.user.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-2", Username: "viewer", CanModify: false}, nil)

		err := svc.Update(context.Background(), request, "client-1")

		assert.ErrorIs(t, err, failure.InsufficientPermissions)
	})

	t.Run("unknown client is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Client{}, nil)

		err := svc.Update(context.Background(), request, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("empty request is a no-op success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Client{ID: "client-1"}, nil)

		err := svc.Update(context.Background(), dto.UpdateClientRequest{ModifiedBy: "admin"}, "client-1")

		assert.NoError(t, err)
	})

	t.Run("only differing fields are audit logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncCache(m)

		current := model.Client{
			ID:       "client-1",
			Status:   model.StatusPending,
			Priority: model.PriorityNormal,
		}

		m.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "confirmed", fields[model.FieldStatus])
				assert.Equal(t, model.PriorityNormal, fields[model.FieldPriority], "unchanged fields are still written")
				assert.Contains(t, fields, model.FieldLastModified)
				assert.Equal(t, "admin", fields[model.FieldModifiedBy])

				return nil
			})

		m.audit.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries []auditModel.LogEntry) error {
				assert.Len(t, entries, 1, "priority did not change, so only status is logged")
				assert.Equal(t, auditModel.ActionUpdated, entries[0].Action)
				assert.Equal(t, model.FieldStatus, *entries[0].FieldChanged)
				assert.Equal(t, model.StatusPending, *entries[0].OldValue)
				assert.Equal(t, "confirmed", *entries[0].NewValue)
				assert.Equal(t, "admin", entries[0].ModifiedBy)

				return nil
			})

		err := svc.Update(context.Background(), request, "client-1")

		assert.NoError(t, err)
	})
}

func TestClientService_AddNote(t *testing.T) {
	request := noteDto.AddNoteRequest{User: "admin", Note: "Called the client"}

	t.Run("unknown client is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.AddNote(context.Background(), request, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("stores note with author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		allowAsyncCache(m)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		m.note.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, note noteModel.Note) error {
				assert.Equal(t, "client-1", note.ClientID)
				assert.Equal(t, "admin", note.Author)
				assert.Equal(t, "Called the client", note.Note)
				assert.NotEmpty(t, note.ID)

				return nil
			})

		err := svc.AddNote(context.Background(), request, "client-1")

		assert.NoError(t, err)
	})
}
