package repository

//go:generate go run go.uber.org/mock/mockgen -source=./traveler.go -destination=../mocks/traveler_mock.go -package=mocks

import (
	"context"

	"cardex/infras/otel"
	"cardex/infras/postgres"
	"cardex/internal/domains/client/model"
	gDto "cardex/shared/dto"
	gRepo "cardex/shared/repository"
)

type Traveler interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Traveler, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type travelerRepositoryImpl struct {
	gRepo.Repository[model.Traveler]
}

func NewTraveler(db *postgres.Connection, otel otel.Otel) Traveler {
	return &travelerRepositoryImpl{
		Repository: gRepo.NewRepository[model.Traveler](model.TravelerEntityName, model.TravelerTableName, model.TravelerFieldID, db, otel),
	}
}
