package client

import (
	"net/http"

	"cardex/infras/otel"
	"cardex/internal/domains/client/model"
	"cardex/internal/domains/client/model/dto"
	"cardex/internal/domains/client/service"
	noteDto "cardex/internal/domains/note/model/dto"
	"cardex/shared/constant"
	gDto "cardex/shared/dto"
	"cardex/shared/validator"
	"cardex/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/submit-form", handler.SubmitForm)

	router.Get("/clients", handler.GetClients)

	router.Route("/client/{id}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetClient)
		routerGroup.Put("/", handler.UpdateClient)
		routerGroup.Get("/travelers", handler.GetTravelers)
		routerGroup.Post("/note", handler.AddNote)
	})
}

// SubmitForm handles a public intake-form submission.
// @Summary Submit an intake form
// @Description Store a client submission with optional companion travelers and attachment.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.SubmitClientRequest true "Submit Client Request"
// @Success 201 {object} dto.SubmitClientResponse "Form submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/submit-form [post]
func (handler *Handler) SubmitForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitForm")
	defer scope.End()

	req := dto.SubmitClientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit form")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Form submitted successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetClients retrieves client records for the dashboard.
// @Summary Get all clients
// @Description Retrieve client records with optional filtering, search, and pagination.
// @Tags Client
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, completed, cancelled); 'All' disables the filter"
// @Param group_type query string false "Filter by group type; 'All' disables the filter"
// @Param search query string false "Case-insensitive substring match on name, email, or phone"
// @Param start_date query string false "Arrival date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Arrival date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.GetClientsResponse "List of clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.SortBy = model.FieldSubmissionDate
	queryParams.SortDir = gDto.SortDirDesc

	clients, err := handler.service.GetAll(ctx, queryParams, buildClientFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClient retrieves one client record with its notes and modification
// history.
// @Summary Get a client
// @Description Retrieve a client record, its annotations, and its last twenty modification log entries.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientDetailResponse "Client detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/{id} [get]
func (handler *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client retrieved successfully")

	response.WithJSON(w, http.StatusOK, client)
}

// GetTravelers retrieves the companion travelers of a client record.
// @Summary Get a client's travelers
// @Description Retrieve the companion travelers attached to a client submission, ordered by traveler number.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.GetTravelersResponse "List of travelers"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/{id}/travelers [get]
func (handler *Handler) GetTravelers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTravelers")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	travelers, err := handler.service.GetTravelers(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get travelers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travelers retrieved successfully")

	response.WithJSON(w, http.StatusOK, travelers)
}

// UpdateClient applies a partial update to a client record.
// @Summary Update a client
// @Description Update whitelisted fields of a client record and log every value change.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Message "Client updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/{id} [put]
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClientRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client updated successfully by " + req.ModifiedBy)

	response.WithMessage(w, http.StatusOK, "Client updated successfully")
}

// AddNote attaches a staff annotation to a client record.
// @Summary Add a note
// @Description Attach a free-form staff note to a client record.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body noteDto.AddNoteRequest true "Add Note Request"
// @Success 201 {object} response.Message "Note added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/client/{id}/note [post]
func (handler *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddNote")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := noteDto.AddNoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddNote(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add note")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Note added successfully by " + req.User)

	response.WithMessage(w, http.StatusCreated, "Note added successfully")
}

// buildClientFilter translates list query parameters into predicates. The
// "All" sentinel and empty values add no predicate; search expands into an
// OR group over name, email, and phone.
func buildClientFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := query.Get(constant.RequestParamStatus); status != "" && status != constant.FilterValueAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if groupType := query.Get(constant.RequestParamGroupType); groupType != "" && groupType != constant.FilterValueAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGroupType,
			Operator: gDto.FilterOperatorEq,
			Value:    groupType,
			Table:    model.TableName,
		})
	}

	if search := query.Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldFullName,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldEmail,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldPhone,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}

	if startDate := query.Get(constant.RequestParamStartDate); startDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  constant.RequestParamStartDate,
			Field:    model.FieldArrivalDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    startDate,
			Table:    model.TableName,
		})
	}

	if endDate := query.Get(constant.RequestParamEndDate); endDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  constant.RequestParamEndDate,
			Field:    model.FieldArrivalDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    endDate,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
