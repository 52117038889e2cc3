package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cardex/infras/otel"
	"cardex/infras/postgres"
	"cardex/internal/domains/note/model"
	gDto "cardex/shared/dto"
	gRepo "cardex/shared/repository"
)

type Note interface {
	Insert(ctx context.Context, model model.Note) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Note, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Note]
}

func New(db *postgres.Connection, otel otel.Otel) Note {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Note](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
