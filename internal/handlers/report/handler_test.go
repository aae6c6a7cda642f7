package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	reportMocks "hotel/internal/domains/report/mocks"
	"hotel/internal/domains/report/model/dto"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/handlers/report"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const roomID = "7f4b1f7e-4d4e-4a57-9a0b-0d4f7c0c2a11"

func newRouter(t *testing.T) (chi.Router, *reportMocks.MockReport) {
	svc := reportMocks.NewMockReport(gomock.NewController(t))
	handler := report.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.StaffRouter)

	return router, svc
}

func get(router chi.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestGetOccupancy(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Occupancy(gomock.Any(), roomID, dto.ReportRequest{Start: "2025-07-01", End: "2025-07-11"}).
		Return(dto.OccupancyResponse{RoomID: roomID, Start: "2025-07-01", End: "2025-07-11", OccupancyRate: 40}, nil)

	rec := get(router, "/v1/admin/rooms/"+roomID+"/occupancy?start=2025-07-01&end=2025-07-11")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"occupancy_rate":40`)
}

func TestGetRevenue(t *testing.T) {
	t.Run("open window", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Revenue(gomock.Any(), roomID, dto.ReportRequest{}).
			Return(dto.RevenueResponse{RoomID: roomID, Revenue: 700}, nil)

		rec := get(router, "/v1/admin/rooms/"+roomID+"/revenue")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"revenue":700`)
	})

	t.Run("unknown room", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Revenue(gomock.Any(), roomID, gomock.Any()).Return(dto.RevenueResponse{}, roomModel.ErrRoomNotFound)

		rec := get(router, "/v1/admin/rooms/"+roomID+"/revenue?start=2025-07-01")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReport_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "room id is not a uuid", path: "/v1/admin/rooms/room-1/occupancy"},
		{name: "malformed start", path: "/v1/admin/rooms/" + roomID + "/occupancy?start=07/01/2025"},
		{name: "impossible end", path: "/v1/admin/rooms/" + roomID + "/revenue?end=2025-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := get(router, tt.path)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
