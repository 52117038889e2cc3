package service

import (
	"context"
	"errors"
	"fmt"

	"cardex/infras/otel"
	"cardex/internal/domains/user/model"
	"cardex/internal/domains/user/model/dto"
	"cardex/internal/domains/user/repository"
	"cardex/shared/constant"
	gDto "cardex/shared/dto"
	"cardex/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type User interface {
	GetAll(ctx context.Context) (dto.GetUsersResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Oldest accounts first, matching creation order.
	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCreatedDate, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.BadRequestFromString("Username already exists") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
