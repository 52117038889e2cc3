package service

import (
	"context"
	"fmt"
	"strconv"

	"cardex/config"
	"cardex/infras/otel"
	clientModel "cardex/internal/domains/client/model"
	clientRepo "cardex/internal/domains/client/repository"
	"cardex/internal/domains/report/model/dto"
	"cardex/shared/cache"
	"cardex/shared/constant"
	gDto "cardex/shared/dto"
	"cardex/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	// ExportFileName is the attachment name the export endpoint serves.
	ExportFileName = "cardex_clients_export.csv"

	monthlyWindowMonths = 12
	upcomingWindowDays  = 30
)

// exportHeader names the CSV columns, in storage order. Tag-set columns are
// exported as their raw stored JSON text.
var exportHeader = []string{
	"ID", "Submission Date", "Full Name", "Email", "Phone", "Travelers", "Group Type",
	"Arrival Date", "Departure Date", "Accommodation Type", "Budget Range",
	"Dietary Restrictions", "Accessibility Needs", "Preferred Language",
	"Custom Activities", "Food Preferences", "Additional Inquiries",
	"GDPR Consent", "Status", "Priority", "Assigned To", "Internal Notes",
}

type Report interface {
	GetStats(ctx context.Context) (dto.StatsResponse, error)
	Export(ctx context.Context) ([][]string, error)
}

type serviceImpl struct {
	clientRepo clientRepo.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(clientRepo clientRepo.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		clientRepo: clientRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) GetStats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, constant.CacheKeyStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", constant.CacheKeyStats).Msg("cache hit for stats")

		return res, nil
	}

	total, err := s.clientRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	byStatus, err := s.clientRepo.CountGroupedBy(ctx, clientModel.FieldStatus, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate clients by status")

		return res, fmt.Errorf("failed to aggregate clients by status: %w", err)
	}

	byGroupType, err := s.clientRepo.CountGroupedBy(ctx, clientModel.FieldGroupType, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate clients by group type")

		return res, fmt.Errorf("failed to aggregate clients by group type: %w", err)
	}

	monthly, err := s.clientRepo.CountByMonth(ctx, monthlyWindowMonths)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate monthly submissions")

		return res, fmt.Errorf("failed to aggregate monthly submissions: %w", err)
	}

	now := timezone.Now()
	upcoming, err := s.clientRepo.CountArrivalsBetween(
		ctx,
		now.Format(constant.DateFormat),
		now.AddDate(0, 0, upcomingWindowDays).Format(constant.DateFormat),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to count upcoming arrivals")

		return res, fmt.Errorf("failed to count upcoming arrivals: %w", err)
	}

	res.Success = true
	res.Stats = dto.Stats{
		TotalClients:       total,
		ByStatus:           byStatus,
		ByGroupType:        byGroupType,
		MonthlySubmissions: monthly,
		UpcomingArrivals:   upcoming,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CacheKeyStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats to cache")
		}
	}()

	return res, nil
}

// Export renders the full client table as CSV rows, newest submission first.
// The first row is the header.
func (s *serviceImpl) Export(ctx context.Context) (rows [][]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	clients, err := s.clientRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: clientModel.FieldSubmissionDate, SortDir: gDto.SortDirDesc},
		gDto.FilterGroup{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients for export")

		return nil, fmt.Errorf("failed to get clients for export: %w", err)
	}

	rows = make([][]string, 0, len(clients)+1)
	rows = append(rows, exportHeader)

	for _, client := range clients {
		rows = append(rows, exportRow(client))
	}

	return rows, nil
}

func exportRow(client clientModel.Client) []string {
	return []string{
		client.ID,
		client.SubmissionDate.Format(constant.DateTimeFormat),
		client.FullName,
		client.Email,
		client.Phone,
		strconv.Itoa(client.NumberOfTravelers),
		stringValue(client.GroupType),
		stringValue(client.ArrivalDate),
		stringValue(client.DepartureDate),
		client.AccommodationType,
		client.BudgetRange,
		client.DietaryRestrictions,
		client.AccessibilityNeeds,
		client.PreferredLanguage,
		client.CustomActivities,
		client.FoodPreferences,
		client.AdditionalInquiries,
		strconv.FormatBool(client.GDPRConsent),
		client.Status,
		client.Priority,
		stringValue(client.AssignedTo),
		stringValue(client.InternalNotes),
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
