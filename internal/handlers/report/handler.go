package report

import (
	"net/http"

	"cardex/infras/otel"
	"cardex/internal/domains/report/service"
	"cardex/shared/constant"
	"cardex/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stats", handler.GetStats)
	router.Get("/export", handler.ExportCSV)
}

// GetStats retrieves dashboard aggregates.
// @Summary Get statistics
// @Description Retrieve client counts by status, group type, month, and upcoming arrivals.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Aggregated statistics"
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.GetStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// ExportCSV downloads the full client table as CSV.
// @Summary Export clients as CSV
// @Description Download every client record as a CSV attachment, newest submission first.
// @Tags Report
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} response.Error
// @Router /v1/export [get]
func (handler *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCSV")
	defer scope.End()

	rows, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export clients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clients exported successfully")

	response.WithCSV(w, service.ExportFileName, rows)
}
