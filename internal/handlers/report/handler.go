package report

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
)

const formatCSV = "csv"

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
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/{type}", handler.GenerateReport)
	})
}

// GenerateReport builds a date-ranged report, as JSON or a CSV download.
// @Summary Generate a report
// @Description Generate a bookings, check_ins, check_outs, or revenue report for a date range. Set format=csv for a CSV download and archive=true to upload a copy to object storage.
// @Tags Report
// @Produce json
// @Produce text/csv
// @Param type path string true "Report type" Enums(bookings, check_ins, check_outs, revenue)
// @Param from_date query string true "Range start (DD/MM/YYYY or ISO)"
// @Param to_date query string true "Range end (DD/MM/YYYY or ISO)"
// @Param format query string false "Output format" Enums(json, csv)
// @Param archive query boolean false "Archive a CSV copy to object storage"
// @Success 200 {object} response.Data[dto.ReportResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reports/{type} [get]
// @Security BearerAuth
func (handler *Handler) GenerateReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateReport")
	defer scope.End()

	reportType := chi.URLParam(request, "type")
	query := request.URL.Query()

	req := dto.ReportRequest{
		FromDate: query.Get(constant.RequestParamFromDate),
		ToDate:   query.Get(constant.RequestParamToDate),
		Format:   query.Get(constant.RequestParamFormat),
		Archive:  query.Get(constant.RequestParamArchive) == "true",
	}

	res, err := handler.service.Generate(ctx, reportType, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate report")

		response.WithError(writer, err)

		return
	}

	if req.Format == formatCSV {
		data, err := handler.service.RenderCSV(res)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to render report as csv")

			response.WithError(writer, err)

			return
		}

		fileName := fmt.Sprintf("%s_%s_%s.csv", res.ReportType, res.FromDate, res.ToDate)
		response.WithCSV(writer, fileName, data)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
