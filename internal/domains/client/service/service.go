package service

import (
	"context"
	"errors"
	"fmt"

	"cardex/config"
	"cardex/infras/otel"
	"cardex/infras/s3"
	auditModel "cardex/internal/domains/audit/model"
	auditDto "cardex/internal/domains/audit/model/dto"
	auditRepo "cardex/internal/domains/audit/repository"
	"cardex/internal/domains/client/model"
	"cardex/internal/domains/client/model/dto"
	"cardex/internal/domains/client/repository"
	noteModel "cardex/internal/domains/note/model"
	noteDto "cardex/internal/domains/note/model/dto"
	noteRepo "cardex/internal/domains/note/repository"
	userModel "cardex/internal/domains/user/model"
	userRepo "cardex/internal/domains/user/repository"
	"cardex/shared"
	"cardex/shared/base64"
	"cardex/shared/cache"
	"cardex/shared/constant"
	gDto "cardex/shared/dto"
	"cardex/shared/failure"
	"cardex/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetClient    = "client:get"
	cacheGetAllClient = "client:gets"
	cacheCountClient  = "client:count"

	historyLimit = 20
)

type Client interface {
	Submit(ctx context.Context, req dto.SubmitClientRequest) (dto.SubmitClientResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClientsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ClientDetailResponse, error)
	GetTravelers(ctx context.Context, id string) (dto.GetTravelersResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id string) error
	AddNote(ctx context.Context, req noteDto.AddNoteRequest, id string) error
}

type serviceImpl struct {
	repo         repository.Client
	travelerRepo repository.Traveler
	auditRepo    auditRepo.Log
	noteRepo     noteRepo.Note
	userRepo     userRepo.User
	cfg          *config.Config
	cache        cache.RedisCache
	s3           s3.S3
	otel         otel.Otel
}

func New(
	repo repository.Client,
	travelerRepo repository.Traveler,
	auditRepo auditRepo.Log,
	noteRepo noteRepo.Note,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	s3 s3.S3,
	otel otel.Otel,
) Client {
	return &serviceImpl{
		repo:         repo,
		travelerRepo: travelerRepo,
		auditRepo:    auditRepo,
		noteRepo:     noteRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		cache:        cache,
		s3:           s3,
		otel:         otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitClientRequest) (res dto.SubmitClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	attachedDocument := s.uploadAttachment(ctx, req.AttachedDocument)

	client := req.ToModel(attachedDocument)

	travelers := make([]model.Traveler, len(req.AdditionalTravelers))
	for i := range req.AdditionalTravelers {
		travelers[i] = req.AdditionalTravelers[i].ToModel(client.ID)
		if travelers[i].TravelerNumber == 0 {
			travelers[i].TravelerNumber = i + 1
		}
	}

	fieldChanged := auditModel.CreationFieldLabel
	entry := auditModel.LogEntry{
		ID:               uuid.NewString(),
		ClientID:         client.ID,
		ModifiedBy:       auditModel.SystemActor,
		ModificationDate: client.SubmissionDate,
		Action:           auditModel.ActionCreated,
		FieldChanged:     &fieldChanged,
	}

	if err = s.repo.CreateSubmission(ctx, client, travelers, entry); err != nil {
		log.Error().Err(err).Msg("failed to create submission")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.BadRequestFromString("A submission with this email already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create submission: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)

		if err := s.cache.Delete(c, constant.CacheKeyStats); err != nil {
			log.Error().Err(err).Msg("failed to delete stats from cache")
		}
	}()

	res.Success = true
	res.Message = "Form submitted successfully"
	res.ClientID = client.ID

	return res, nil
}

// uploadAttachment stores an optional intake attachment and returns its URL.
// Attachment problems never fail the submission; the record is stored with
// an empty reference instead.
func (s *serviceImpl) uploadAttachment(ctx context.Context, payload *dto.AttachmentPayload) string {
	if payload == nil {
		return constant.Empty
	}

	fileData, err := base64.DecodePayload(payload.Data)
	if err != nil {
		log.Error().Err(err).Str("fileName", payload.Name).Msg("failed to decode attachment, storing submission without it")

		return constant.Empty
	}

	contentType := base64.GetContentType(payload.Data)
	if contentType == constant.Empty {
		contentType = constant.ContentTypeBinary
	}

	fileName := fmt.Sprintf("%s_%s", timezone.Now().Format(constant.AttachmentNameFormat), payload.Name)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.UploadDirectory, fileName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileName).Msg("failed to upload attachment, storing submission without it")

		return constant.Empty
	}

	return url
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClient, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clients")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(models, total, req.Page, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clients to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountClient, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for client count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClientDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetClient, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for client")

		return res, nil
	}

	client, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return res, failure.NotFound("Client not found") // nolint:wrapcheck
	}

	notes, err := s.noteRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: noteModel.FieldCreatedDate, SortDir: gDto.SortDirDesc},
		shared.FilterByID(id, noteModel.FieldClientID, ""),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client notes")

		return res, fmt.Errorf("failed to get client notes: %w", err)
	}

	history, err := s.auditRepo.GetAll(
		ctx,
		gDto.QueryParams{Limit: historyLimit, SortBy: auditModel.FieldModificationDate, SortDir: gDto.SortDirDesc},
		shared.FilterByID(id, auditModel.FieldClientID, ""),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client history")

		return res, fmt.Errorf("failed to get client history: %w", err)
	}

	res.Success = true
	res.Client.FromModel(client)
	res.Notes = noteDto.FromModels(notes)
	res.History = auditDto.FromModels(history)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetTravelers(ctx context.Context, id string) (res dto.GetTravelersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTravelers")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return res, fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Client not found") // nolint:wrapcheck
	}

	travelers, err := s.travelerRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.TravelerFieldNumber, SortDir: gDto.SortDirAsc},
		shared.FilterByID(id, model.TravelerFieldClientID, ""),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get travelers")

		return res, fmt.Errorf("failed to get travelers: %w", err)
	}

	res.FromModels(travelers)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, err := s.userRepo.Get(ctx, shared.FilterByID(req.ModifiedBy, userModel.FieldUsername, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get modifying user")

		return fmt.Errorf("failed to get modifying user: %w", err)
	}

	if actor.ID == constant.Empty || !actor.CanModify {
		return failure.InsufficientPermissions
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return fmt.Errorf("failed to get client: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("Client not found") // nolint:wrapcheck
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return nil
	}

	now := timezone.Now()
	updatedFields := make(map[string]any, len(changes)+2)
	entries := []auditModel.LogEntry{}

	for _, change := range changes {
		updatedFields[change.Column] = change.Value

		oldValue := current.ValueText(change.Column)
		if oldValue == change.Text {
			continue
		}

		column := change.Column
		newValue := change.Text
		entries = append(entries, auditModel.LogEntry{
			ID:               uuid.NewString(),
			ClientID:         id,
			ModifiedBy:       req.ModifiedBy,
			ModificationDate: now,
			Action:           auditModel.ActionUpdated,
			FieldChanged:     &column,
			OldValue:         &oldValue,
			NewValue:         &newValue,
		})
	}

	updatedFields[model.FieldLastModified] = now
	updatedFields[model.FieldModifiedBy] = req.ModifiedBy

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update client")

		return fmt.Errorf("failed to update client: %w", err)
	}

	if err = s.auditRepo.InsertBulk(ctx, entries); err != nil {
		log.Error().Err(err).Msg("failed to write modification log")

		return fmt.Errorf("failed to write modification log: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClient, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete client from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)

		if err := s.cache.Delete(c, constant.CacheKeyStats); err != nil {
			log.Error().Err(err).Msg("failed to delete stats from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) AddNote(ctx context.Context, req noteDto.AddNoteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Client not found") // nolint:wrapcheck
	}

	if err = s.noteRepo.Insert(ctx, req.ToModel(id)); err != nil {
		log.Error().Err(err).Msg("failed to add note")

		return fmt.Errorf("failed to add note: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClient, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete client from cache")
		}
	}()

	return nil
}
