package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cardex/infras/otel"
	"cardex/infras/postgres"
	auditModel "cardex/internal/domains/audit/model"
	auditRepo "cardex/internal/domains/audit/repository"
	"cardex/internal/domains/client/model"
	"cardex/shared/constant"
	gDto "cardex/shared/dto"
	"cardex/shared/logger"
	gRepo "cardex/shared/repository"
)

type Client interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Client, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Client, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CreateSubmission(ctx context.Context, client model.Client, travelers []model.Traveler, entry auditModel.LogEntry) error
	CountGroupedBy(ctx context.Context, column string, excludeNull bool) (map[string]int, error)
	CountByMonth(ctx context.Context, months int) (map[string]int, error)
	CountArrivalsBetween(ctx context.Context, startDate, endDate string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	travelers gRepo.Repository[model.Traveler]
	audit     auditRepo.Log
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel, audit auditRepo.Log) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
		travelers:  gRepo.NewRepository[model.Traveler](model.TravelerEntityName, model.TravelerTableName, model.TravelerFieldID, db, otel),
		audit:      audit,
		db:         db,
		otel:       otel,
	}
}

// CreateSubmission stores a client record, its companion travelers, and the
// creation audit entry in one transaction, so a half-written submission never
// becomes visible.
func (repo *repositoryImpl) CreateSubmission(ctx context.Context, client model.Client, travelers []model.Traveler, entry auditModel.LogEntry) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.CreateSubmission")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, client); err != nil {
		return err
	}

	if err = repo.travelers.InsertBulkTx(ctx, tx, travelers); err != nil {
		return err
	}

	if err = repo.audit.InsertTx(ctx, tx, entry); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// CountGroupedBy aggregates record counts per distinct value of a column.
// With excludeNull set, NULL values are left out of the result instead of
// appearing as an empty-string bucket.
func (repo *repositoryImpl) CountGroupedBy(ctx context.Context, column string, excludeNull bool) (res map[string]int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.CountGroupedBy")
	defer scope.End()
	defer scope.TraceIfError(err)

	where := ""
	if excludeNull {
		where = fmt.Sprintf("WHERE %s IS NOT NULL", column)
	}

	query := fmt.Sprintf("SELECT COALESCE(%s, '') AS key, COUNT(*) AS count FROM %s %s GROUP BY key", column, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectCounts(ctx, scope, query)
}

// CountByMonth aggregates submissions per calendar month ("YYYY-MM") over the
// trailing window of months.
func (repo *repositoryImpl) CountByMonth(ctx context.Context, months int) (res map[string]int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.CountByMonth")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT to_char(%s, 'YYYY-MM') AS key, COUNT(*) AS count FROM %s WHERE %s >= NOW() - INTERVAL '%d months' GROUP BY key ORDER BY key",
		model.FieldSubmissionDate, model.TableName, model.FieldSubmissionDate, months,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.selectCounts(ctx, scope, query)
}

// CountArrivalsBetween counts records whose arrival date falls inside the
// inclusive ISO date range. The comparison is textual, which sorts correctly
// for ISO dates; NULL arrival dates never match.
func (repo *repositoryImpl) CountArrivalsBetween(ctx context.Context, startDate, endDate string) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.CountArrivalsBetween")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s BETWEEN $1 AND $2", model.TableName, model.FieldArrivalDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, startDate, endDate); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count arrivals (%s): %w", model.EntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) selectCounts(ctx context.Context, scope otel.Scope, query string) (map[string]int, error) {
	rows := []struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}{}

	if err := repo.db.Read.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to aggregate data (%s): %w", model.EntityName, err)
	}

	res := make(map[string]int, len(rows))
	for _, row := range rows {
		res[row.Key] = row.Count
	}

	return res, nil
}
