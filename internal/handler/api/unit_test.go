//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parkstay/internal/handler/api"
	resdto "parkstay/internal/handler/dto/response"
	"parkstay/internal/handler/middleware"
	"parkstay/internal/pkg/errs"
	"parkstay/internal/usecase/commands"
	"parkstay/tests/common/builder"
	"parkstay/tests/common/httptest"
	"parkstay/tests/common/testutil"
	commandsmock "parkstay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UnitHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUnitCommands
}

func (s *UnitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUnitCommands(s.mockCtrl)
	h := api.NewUnitHandler(s.mockCommands)

	s.router.POST("/units", h.CreateUnit)
	s.router.PUT("/units/:id", h.UpdateUnit)
	s.router.DELETE("/units/:id", h.DeleteUnit)
}

func (s *UnitHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUnitHandlerSuite(t *testing.T) {
	suite.Run(t, new(UnitHandlerTestSuite))
}

func (s *UnitHandlerTestSuite) TestCreateUnit() {
	reqBody := builder.NewUnitBuilder().WithZone("VIP").BuildCreateRequestDTO()
	created := builder.NewUnitBuilder().WithID("u-new").WithZone("VIP").MustBuild()

	s.Run("success", func() {
		s.mockCommands.EXPECT().SaveUnit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.SaveUnitParams) (*commands.SaveUnitResult, error) {
				s.Nil(p.ID)
				s.Equal(4, *p.Capacity)
				return &commands.SaveUnitResult{Unit: created, Created: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units", reqBody, "")

		var body resdto.UnitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("u-new", body.ID)
		s.True(body.VIP)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"zero capacity", testutil.Field("capacity", 0)},
			{"negative price", testutil.Field("price", -1)},
			{"unknown status", testutil.Field("status", "closed")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/units", m, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *UnitHandlerTestSuite) TestUpdateUnit() {
	s.Run("success", func() {
		updated := builder.NewUnitBuilder().InMaintenance().MustBuild()
		s.mockCommands.EXPECT().SaveUnit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.SaveUnitParams) (*commands.SaveUnitResult, error) {
				s.Equal("A1", *p.ID)
				s.Equal("maintenance", *p.Status)
				s.Nil(p.Name)
				return &commands.SaveUnitResult{Unit: updated}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/units/A1", map[string]any{"status": "maintenance"}, "")

		var body resdto.UnitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("maintenance", body.Status)
	})

	s.Run("error: 404 for an unknown unit", func() {
		s.mockCommands.EXPECT().SaveUnit(gomock.Any(), gomock.Any()).Return(nil, errs.ErrUnitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/units/Z9", map[string]any{"name": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Accommodation not found")
	})
}

func (s *UnitHandlerTestSuite) TestDeleteUnit() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().DeleteUnit(gomock.Any(), "A1").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/units/A1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().DeleteUnit(gomock.Any(), "Z9").Return(errs.ErrUnitNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/units/Z9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Accommodation not found")
	})
}
