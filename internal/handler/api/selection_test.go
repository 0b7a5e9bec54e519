//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/calendar"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/handler/api"
	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/usecase/shared"
	"clinic-scheduler/tests/common/builder"
	"clinic-scheduler/tests/common/httptest"
	usecasemock "clinic-scheduler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SelectionHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockSvc   *usecasemock.MockSelectionService
	handler   *api.SelectionHandler
	principal *shared.Principal
}

func (s *SelectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = usecasemock.NewMockSelectionService(s.mockCtrl)
	s.handler = api.NewSelectionHandler(s.mockSvc)
	s.principal = newPrincipal(user.RolePatient)

	s.router.Use(fakeAuth(s.principal))
	s.router.PUT("/selection", s.handler.Select)
	s.router.GET("/selection", s.handler.Get)
	s.router.DELETE("/selection", s.handler.Clear)
}

func (s *SelectionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSelectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SelectionHandlerTestSuite))
}

func (s *SelectionHandlerTestSuite) TestSelect() {
	slot := builder.NewSlotBuilder().WithID(7).Build()

	s.Run("success: returns the selection with display text", func() {
		s.mockSvc.EXPECT().Select(gomock.Any(), *s.principal, int64(7)).
			Return(calendar.Selection{}.Select(slot), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/selection", reqdto.SelectSlotRequest{SlotID: 7}, "token")

		var response resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Selected)
		s.True(response.CanBook)
		s.Require().NotNil(response.Slot)
		s.Equal(int64(7), response.Slot.ID)
		s.Equal("Monday, March 04, 2024", response.DateText)
		s.Equal("09:00 AM - 09:30 AM", response.TimeText)
	})

	s.Run("success: a booked slot can be selected but not booked", func() {
		booked := builder.NewSlotBuilder().WithID(8).AsBooked().Build()
		s.mockSvc.EXPECT().Select(gomock.Any(), *s.principal, int64(8)).
			Return(calendar.Selection{}.Select(booked), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/selection", reqdto.SelectSlotRequest{SlotID: 8}, "token")

		var response resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Selected)
		s.False(response.CanBook)
	})

	s.Run("error: 400 when slot_id is missing or not positive", func() {
		for _, body := range []map[string]any{{}, {"slot_id": 0}, {"slot_id": -1}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/selection", body, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 404 for an unknown slot", func() {
		s.mockSvc.EXPECT().Select(gomock.Any(), *s.principal, int64(99)).
			Return(calendar.Selection{}, availability.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/selection", reqdto.SelectSlotRequest{SlotID: 99}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "slot not found")
	})

	s.Run("error: 401 without a principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/selection", reqdto.SelectSlotRequest{SlotID: 7}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *SelectionHandlerTestSuite) TestGetAndClear() {
	s.Run("success: nothing selected", func() {
		s.mockSvc.EXPECT().Current(gomock.Any(), *s.principal).Return(calendar.Selection{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/selection", nil, "token")

		var response resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Selected)
		s.False(response.CanBook)
		s.Nil(response.Slot)
	})

	s.Run("success: clear returns 204", func() {
		s.mockSvc.EXPECT().Clear(*s.principal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/selection", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
