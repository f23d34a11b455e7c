package api

import (
	"errors"
	"net/http"

	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/handler/httperr"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/usecase/commands"
	"parkstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Checked in order; the first match wins.
var useCaseErrors = []errorMapping{
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrUnitNotFound, http.StatusNotFound, "Accommodation not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrUnitUnavailable, http.StatusUnprocessableEntity, "Accommodation is under maintenance"},
	{errs.ErrReservationCanceled, http.StatusConflict, "Reservation is already cancelled"},
	{errs.ErrDuplicateUsername, http.StatusConflict, "Username already exists"},
	{errs.ErrInvalidStay, http.StatusBadRequest, "Check-out must be after check-in"},
	{queries.ErrUnknownSheet, http.StatusNotFound, "Unknown sheet"},
	{errs.ErrStoreOperationFailed, http.StatusServiceUnavailable, "Sheet store unavailable"},
}

// abortWithUseCaseError translates a use case failure into the matching HTTP error.
func abortWithUseCaseError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	if errors.As(err, &conflict) {
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Accommodation is already booked for these dates", resdto.FromReservation(conflict.Existing))
		return
	}

	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}

	if errs.Is(err, errs.ErrDomainValidation) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed: "+err.Error(), nil)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
