package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cardex/config"
	"cardex/infras/otel/mocks"
	clientMocks "cardex/internal/domains/client/mocks"
	clientModel "cardex/internal/domains/client/model"
	"cardex/internal/domains/report/model/dto"
	"cardex/internal/domains/report/service"
	cacheMocks "cardex/shared/cache/mocks"
	"cardex/shared/constant"
	gDto "cardex/shared/dto"
	"cardex/shared/failure"
)

func newService(ctrl *gomock.Controller) (service.Report, *clientMocks.MockClient, *cacheMocks.MockRedisCache) {
	repo := clientMocks.NewMockClient(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, cache, mocks.NewOtel()), repo, cache
}

func TestReportService_GetStats(t *testing.T) {
	t.Run("aggregates on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, cache := newService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyStats, gomock.Any()).
			Return(errors.New("cache miss"))
		cache.EXPECT().
			Save(gomock.Any(), constant.CacheKeyStats, gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(42, nil)
		repo.EXPECT().
			CountGroupedBy(gomock.Any(), clientModel.FieldStatus, false).
			Return(map[string]int{"pending": 30, "confirmed": 12}, nil)
		repo.EXPECT().
			CountGroupedBy(gomock.Any(), clientModel.FieldGroupType, true).
			Return(map[string]int{"family": 20}, nil)
		repo.EXPECT().
			CountByMonth(gomock.Any(), 12).
			Return(map[string]int{"2026-08": 7}, nil)
		repo.EXPECT().
			CountArrivalsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, startDate, endDate string) (int, error) {
				start, err := time.Parse(constant.DateFormat, startDate)
				assert.NoError(t, err)

				end, err := time.Parse(constant.DateFormat, endDate)
				assert.NoError(t, err)

				assert.Equal(t, 30*24*time.Hour, end.Sub(start))

				return 5, nil
			})

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 42, res.Stats.TotalClients)
		assert.Equal(t, 12, res.Stats.ByStatus["confirmed"])
		assert.Equal(t, 20, res.Stats.ByGroupType["family"])
		assert.Equal(t, 7, res.Stats.MonthlySubmissions["2026-08"])
		assert.Equal(t, 5, res.Stats.UpcomingArrivals)
	})

	t.Run("serves from cache when present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, cache := newService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyStats, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.StatsResponse)
				assert.True(t, ok)

				res.Success = true
				res.Stats.TotalClients = 9

				return nil
			})

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 9, res.Stats.TotalClients)
	})

	t.Run("aggregation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, cache := newService(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyStats, gomock.Any()).
			Return(errors.New("cache miss"))

		repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetStats(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestReportService_Export(t *testing.T) {
	t.Run("renders header and rows newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newService(ctrl)

		groupType := "family"
		assignedTo := "admin"
		submitted := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]clientModel.Client, error) {
				assert.Equal(t, clientModel.FieldSubmissionDate, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []clientModel.Client{
					{
						ID:                  "client-1",
						SubmissionDate:      submitted,
						FullName:            "John Smith",
						Email:               "john@example.com",
						Phone:               "+1234567890",
						NumberOfTravelers:   3,
						GroupType:           &groupType,
						DietaryRestrictions: `["vegetarian"]`,
						AccessibilityNeeds:  "[]",
						GDPRConsent:         true,
						Status:              clientModel.StatusPending,
						Priority:            clientModel.PriorityHigh,
						AssignedTo:          &assignedTo,
					},
				}, nil
			})

		rows, err := svc.Export(context.Background())

		assert.NoError(t, err)
		assert.Len(t, rows, 2)

		header := rows[0]
		assert.Len(t, header, 22)
		assert.Equal(t, "ID", header[0])
		assert.Equal(t, "Internal Notes", header[21])

		row := rows[1]
		assert.Len(t, row, len(header))
		assert.Equal(t, "client-1", row[0])
		assert.Equal(t, "2026-08-15 10:30:00", row[1])
		assert.Equal(t, "3", row[5])
		assert.Equal(t, "family", row[6])
		assert.Equal(t, "", row[7], "missing arrival date exports as empty")
		assert.Equal(t, `["vegetarian"]`, row[11], "tag sets export as stored text")
		assert.Equal(t, "true", row[17])
		assert.Equal(t, "admin", row[20])
		assert.Equal(t, "", row[21])
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newService(ctrl)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Export(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}
