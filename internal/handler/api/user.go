package api

import (
	"net/http"

	reqdto "parkstay/internal/handler/dto/request"
	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
}

func NewUserHandler(cmds commands.UserCommands) *UserHandler {
	return &UserHandler{cmds: cmds}
}

// @Summary Register user
// @Description New accounts wait for approval, except the admin username.
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "Registration"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	u, err := h.cmds.RegisterUser(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}

// @Summary Approve user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body reqdto.ApproveUserRequest false "Role to grant"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/approve [post]
func (h *UserHandler) ApproveUser(c *gin.Context) {
	var req reqdto.ApproveUserRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBindError(c, err)
			return
		}
	}

	u, err := h.cmds.ApproveUser(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.cmds.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
