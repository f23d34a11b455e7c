package api

import (
	"net/http"

	reqdto "parkstay/internal/handler/dto/request"
	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	cmds commands.UnitCommands
}

func NewUnitHandler(cmds commands.UnitCommands) *UnitHandler {
	return &UnitHandler{cmds: cmds}
}

// @Summary Create accommodation
// @Tags accommodations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUnitRequest true "Accommodation"
// @Success 201 {object} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req reqdto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.SaveUnit(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/units/"+result.Unit.ID())
	c.JSON(http.StatusCreated, resdto.FromUnit(result.Unit))
}

// @Summary Update accommodation
// @Tags accommodations
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body reqdto.UpdateUnitRequest true "Fields to change"
// @Success 200 {object} resdto.UnitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /units/{id} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req reqdto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.SaveUnit(c.Request.Context(), req.ToParams(c.Param("id")))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnit(result.Unit))
}

// @Summary Delete accommodation
// @Description Bookings pointing at the unit are kept.
// @Tags accommodations
// @Param id path string true "Accommodation ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	if err := h.cmds.DeleteUnit(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
