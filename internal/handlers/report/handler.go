package report

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
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

// StaffRouter registers the room reports. The caller applies auth.
func (handler *Handler) StaffRouter(router chi.Router) {
	router.Get("/admin/rooms/{id}/occupancy", handler.GetOccupancy)
	router.Get("/admin/rooms/{id}/revenue", handler.GetRevenue)
}

func request(r *http.Request) (string, dto.ReportRequest, error) {
	roomID := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(roomID, "uuid"); err != nil {
		return roomID, dto.ReportRequest{}, err
	}

	req := dto.ReportRequest{
		Start: r.URL.Query().Get(constant.RequestParamStart),
		End:   r.URL.Query().Get(constant.RequestParamEnd),
	}

	return roomID, req, validator.ValidateStruct(&req)
}

// GetOccupancy reports the share of nights booked in a window.
// @Summary Room occupancy
// @Description Percentage of nights in [start, end) covered by non-cancelled bookings. Defaults to the current month.
// @Tags Report
// @Produce json
// @Param id path string true "Room ID"
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end, exclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyResponse] "Occupancy"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id}/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	roomID, req, err := request(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Occupancy(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRevenue sums the amounts of stays lying entirely inside a window.
// @Summary Room revenue
// @Description Total of non-cancelled bookings with check-in on or after start and check-out on or before end. Omitted bounds are open.
// @Tags Report
// @Produce json
// @Param id path string true "Room ID"
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue in minor units"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id}/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	roomID, req, err := request(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Revenue(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
