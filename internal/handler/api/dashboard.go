package api

import (
	"net/http"

	"parkstay/internal/domain/occupancy"
	reqdto "parkstay/internal/handler/dto/request"
	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/infra/converter"
	"parkstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	snapshots queries.SnapshotQueries
	dashboard queries.DashboardQueries
}

func NewDashboardHandler(snapshots queries.SnapshotQueries, dashboard queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{snapshots: snapshots, dashboard: dashboard}
}

// @Summary Snapshot
// @Description Every sheet normalised into accommodations, bookings and users
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 503 {object} httperr.Response
// @Router /snapshot [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Normalise rows
// @Description Normalise raw rows of one sheet without storing them
// @Tags dashboard
// @Accept json
// @Produce json
// @Param sheet path string true "units, bookings or users"
// @Param request body reqdto.NormalizeRequest true "Raw rows"
// @Success 200 {object} resdto.NormalizeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /normalize/{sheet} [post]
func (h *DashboardHandler) Normalize(c *gin.Context) {
	var req reqdto.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	sheet := converter.Sheet(c.Param("sheet"))
	out, err := h.snapshots.NormalizeRows(sheet, req.Rows)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNormalized(sheet.String(), out))
}

// @Summary Occupancy and revenue
// @Tags dashboard
// @Produce json
// @Param mode query string false "month or year" default(month)
// @Param date query string false "Anchor day (YYYY-MM-DD) or month (YYYY-MM); defaults to today"
// @Success 200 {object} resdto.StatsResponse
// @Failure 422 {object} httperr.Response
// @Router /stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	summary, err := h.dashboard.Stats(c.Request.Context(), occupancy.Mode(c.Query("mode")), c.Query("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Today
// @Description Occupied and free accommodations for the current calendar day
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.TodayResponse
// @Router /today [get]
func (h *DashboardHandler) Today(c *gin.Context) {
	v, err := h.dashboard.Today(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToday(v))
}

// @Summary Calendar
// @Description Accommodation-by-day grid for one month
// @Tags dashboard
// @Produce json
// @Param month query string false "YYYY-MM or YYYY-MM-DD; defaults to the current month"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 422 {object} httperr.Response
// @Router /calendar [get]
func (h *DashboardHandler) Calendar(c *gin.Context) {
	v, err := h.dashboard.Calendar(c.Request.Context(), c.Query("month"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(v))
}
