package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cardex/infras/otel"
	"cardex/infras/postgres"
	"cardex/internal/domains/audit/model"
	gDto "cardex/shared/dto"
	gRepo "cardex/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Log is the append-only modification trail. There are deliberately no
// update or delete methods.
type Log interface {
	Insert(ctx context.Context, model model.LogEntry) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.LogEntry) error
	InsertBulk(ctx context.Context, models []model.LogEntry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LogEntry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LogEntry]
}

func New(db *postgres.Connection, otel otel.Otel) Log {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LogEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
