package api

import (
	"net/http"

	reqdto "parkstay/internal/handler/dto/request"
	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/handler/middleware"
	"parkstay/internal/usecase/commands"
	"parkstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Check booking conflict
// @Description Report the booking, if any, that already holds the accommodation for the stay
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ConflictCheckRequest true "Stay to check"
// @Success 200 {object} resdto.ConflictResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations/conflicts [post]
func (h *ReservationHandler) CheckConflict(c *gin.Context) {
	var req reqdto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	existing, err := h.q.CheckConflict(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflict(existing))
}

// @Summary Create reservation
// @Description Book an accommodation. The acting user is read from X-User-ID.
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Acting user id"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.SaveReservation(c.Request.Context(), req.ToParams(), middleware.GetActorID(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+result.Reservation.ID())
	c.JSON(http.StatusCreated, resdto.FromReservation(result.Reservation))
}

// @Summary Update reservation
// @Description Edit a booking. Omitted fields keep their stored value.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.SaveReservation(c.Request.Context(), req.ToParams(c.Param("id")), middleware.GetActorID(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(result.Reservation))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	r, err := h.cmds.CancelReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(r))
}

// @Summary Reset reservations
// @Description Remove every booking row. Units and users are kept.
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.ResetResponse
// @Failure 503 {object} httperr.Response
// @Router /reservations [delete]
func (h *ReservationHandler) ResetReservations(c *gin.Context) {
	n, err := h.cmds.ResetReservations(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ResetResponse{Deleted: n})
}

// @Summary Export reservations
// @Description Bookings whose check-in falls in the selected month or year
// @Tags reservations
// @Produce json
// @Param mode query string false "all, month or year" default(all)
// @Param date query string false "Anchor day (YYYY-MM-DD) or month (YYYY-MM); defaults to today"
// @Success 200 {array} resdto.ExportRowResponse
// @Failure 422 {object} httperr.Response
// @Router /reservations/export [get]
func (h *ReservationHandler) ExportReservations(c *gin.Context) {
	rows, err := h.q.ExportSelection(c.Request.Context(), queries.ExportMode(c.Query("mode")), c.Query("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExportRows(rows))
}
