//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"parkstay/internal/handler/api"
	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/handler/middleware"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/usecase/commands"
	"parkstay/internal/usecase/queries"
	"parkstay/tests/common/builder"
	"parkstay/tests/common/httptest"
	"parkstay/tests/common/testutil"
	commandsmock "parkstay/tests/mock/commands"
	queriesmock "parkstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ActorMiddleware(), middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations/conflicts", s.handler.CheckConflict)
	s.router.GET("/reservations/export", s.handler.ExportReservations)
	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.PUT("/reservations/:id", s.handler.UpdateReservation)
	s.router.POST("/reservations/:id/cancel", s.handler.CancelReservation)
	s.router.DELETE("/reservations", s.handler.ResetReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	created := builder.NewReservationBuilder().WithID("bk-new").MustBuild()
	result := &commands.SaveReservationResult{Reservation: created, Created: true}

	s.Run("success: returns 201 and records the acting user", func() {
		s.mockCommands.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), "u-7").
			DoAndReturn(func(_ any, p commands.SaveReservationParams, _ string) (*commands.SaveReservationResult, error) {
				s.Nil(p.ID)
				s.Equal("A1", *p.UnitID)
				s.Equal("2024-06-01", *p.CheckIn)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "u-7")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("bk-new", body.ID)
		s.Equal(2, body.Nights)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/bk-new"})
	})

	s.Run("success: thai dates are canonicalised before the use case", func() {
		s.mockCommands.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), middleware.UnknownActor).
			DoAndReturn(func(_ any, p commands.SaveReservationParams, _ string) (*commands.SaveReservationResult, error) {
				s.Equal("2024-06-15", *p.CheckIn)
				s.Equal("2024-06-17", *p.CheckOut)
				return result, nil
			}).Times(1)

		m := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("checkInDate", "15/06/2567"),
			testutil.Field("checkOutDate", "17/06/2567"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReservation{
			{name: "missing field: accommodationId", mutate: testutil.Field("accommodationId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guestName", mutate: testutil.Field("guestName", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: checkInDate", mutate: testutil.Field("checkInDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: checkOutDate", mutate: testutil.Field("checkOutDate", nil), expectCode: http.StatusBadRequest},
			{name: "unknown status", mutate: testutil.Field("status", "maybe"), expectCode: http.StatusBadRequest},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("n", 1001)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "u-7")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict carries the blocking booking", func() {
		existing := builder.NewReservationBuilder().WithID("bk-1").Between("2024-06-02", "2024-06-04").MustBuild()
		s.mockCommands.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &commands.ConflictError{Existing: existing}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "u-7")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		var detail resdto.ReservationResponse
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.Equal("bk-1", detail.ID)
		s.Equal("2024-06-02", detail.CheckInDate)
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"unknown unit", errs.ErrUnitNotFound, http.StatusNotFound, "Accommodation not found"},
			{"maintenance", errs.ErrUnitUnavailable, http.StatusUnprocessableEntity, "maintenance"},
			{"inverted stay", errs.Mark(errs.New("check-out must be after check-in"), errs.ErrInvalidStay), http.StatusBadRequest, "Check-out"},
			{"domain validation", errs.Mark(errs.New("guest name cannot be empty"), errs.ErrDomainValidation), http.StatusUnprocessableEntity, "guest name cannot be empty"},
			{"store down", errs.Mark(errs.New("connection refused"), errs.ErrStoreOperationFailed), http.StatusServiceUnavailable, "unavailable"},
			{"unexpected", errs.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "u-7")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	updated := builder.NewReservationBuilder().WithID("bk-1").Pending().MustBuild()

	s.Run("success: only sent fields are patched", func() {
		s.mockCommands.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), "u-1").
			DoAndReturn(func(_ any, p commands.SaveReservationParams, _ string) (*commands.SaveReservationResult, error) {
				s.Equal("bk-1", *p.ID)
				s.Equal("pending", *p.Status)
				s.Nil(p.UnitID)
				s.Nil(p.CheckIn)
				s.Nil(p.GuestName)
				return &commands.SaveReservationResult{Reservation: updated}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/bk-1",
			map[string]any{"status": "pending"}, "u-1")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 404 when the booking is missing", func() {
		s.mockCommands.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/nope",
			map[string]any{"notes": "x"}, "u-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on an empty guest name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/bk-1",
			map[string]any{"guestName": ""}, "u-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success", func() {
		cancelled := builder.NewReservationBuilder().WithID("bk-1").Cancelled().MustBuild()
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "bk-1").Return(cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/bk-1/cancel", nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "bk-1").
			Return(nil, errs.Mark(errs.New("reservation is already cancelled"), errs.ErrReservationCanceled)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/bk-1/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})
}

// ================================================================================
// TestResetReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestResetReservations() {
	s.mockCommands.EXPECT().ResetReservations(gomock.Any()).Return(7, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations", nil, "admin")

	var body resdto.ResetResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(7, body.Deleted)
}

// ================================================================================
// TestCheckConflict
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckConflict() {
	url := "/reservations/conflicts"
	req := map[string]any{
		"accommodationId": "A1",
		"checkInDate":     "2024-06-02",
		"checkOutDate":    "2024-06-04",
		"excludeId":       " bk-9 ",
	}

	s.Run("free", func() {
		s.mockQueries.EXPECT().CheckConflict(gomock.Any(), queries.ConflictQuery{
			UnitID: "A1", CheckIn: "2024-06-02", CheckOut: "2024-06-04", ExcludeID: "bk-9",
		}).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var body resdto.ConflictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Conflict)
		s.Nil(body.Existing)
	})

	s.Run("taken", func() {
		existing := builder.NewReservationBuilder().WithID("bk-1").MustBuild()
		s.mockQueries.EXPECT().CheckConflict(gomock.Any(), gomock.Any()).Return(existing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var body resdto.ConflictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Conflict)
		s.Equal("bk-1", body.Existing.ID)
	})

	s.Run("error: 400 when dates are missing", func() {
		m := testutil.DtoMap(s.T(), req, testutil.Field("checkOutDate", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestExportReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestExportReservations() {
	s.Run("success: dangling bookings export as Unknown", func() {
		rows := []queries.ExportRow{
			{Reservation: builder.NewReservationBuilder().WithID("bk-1").MustBuild(), Unit: builder.NewUnitBuilder().MustBuild()},
			{Reservation: builder.NewReservationBuilder().WithID("bk-2").ForUnit("gone").MustBuild()},
		}
		s.mockQueries.EXPECT().ExportSelection(gomock.Any(), queries.ExportMonth, "2024-06").Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/export?mode=month&date=2024-06", nil, "")

		var body []resdto.ExportRowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("บ้านริมน้ำ 1", body[0].AccommodationName)
		s.Equal("Unknown", body[1].AccommodationName)
		s.Equal("bk-2", body[1].ID)
	})

	s.Run("error: 422 on a bad mode", func() {
		s.mockQueries.EXPECT().ExportSelection(gomock.Any(), queries.ExportMode("week"), "").
			Return(nil, errs.Mark(queries.ErrInvalidExportMode, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/export?mode=week", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}
