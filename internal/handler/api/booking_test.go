//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/handler/api"
	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/shared"
	"clinic-scheduler/tests/common/builder"
	"clinic-scheduler/tests/common/httptest"
	commandsmock "clinic-scheduler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
	principal    *shared.Principal
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)
	s.principal = newPrincipal(user.RolePatient)

	s.router.Use(fakeAuth(s.principal))
	s.router.POST("/slots/:id/book", s.handler.Book)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestBook() {
	slot := builder.NewSlotBuilder().WithID(5).AsBooked().Build()

	s.Run("success: patient books without a body", func() {
		s.mockCommands.EXPECT().BookSlot(gomock.Any(), *s.principal, commands.BookSlotInput{SlotID: 5}).
			Return(&commands.BookSlotResult{AppointmentID: 42, PatientID: 3, Slot: slot}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/5/book", nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(42), response.AppointmentID)
		s.Equal(int64(3), response.PatientID)
		s.True(response.Slot.IsBooked)
	})

	s.Run("success: booking on behalf of a patient passes patient_id", func() {
		patientID := int64(9)
		s.mockCommands.EXPECT().BookSlot(gomock.Any(), *s.principal, commands.BookSlotInput{SlotID: 5, PatientID: &patientID}).
			Return(&commands.BookSlotResult{AppointmentID: 43, PatientID: patientID, Slot: slot}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/5/book", reqdto.BookSlotRequest{PatientID: &patientID}, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(patientID, response.PatientID)
	})

	s.Run("error: 400 on a non-positive patient_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/5/book", map[string]any{"patient_id": 0}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps command errors to status codes", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "slot already booked", err: availability.ErrSlotAlreadyBooked, expectCode: http.StatusConflict, expectInBody: "already booked"},
			{name: "slot not found", err: availability.ErrSlotNotFound, expectCode: http.StatusNotFound, expectInBody: "slot not found"},
			{name: "patient required", err: commands.ErrPatientRequired, expectCode: http.StatusBadRequest, expectInBody: "patient_id"},
			{name: "booking for someone else", err: commands.ErrBookForOthers, expectCode: http.StatusForbidden, expectInBody: "yourself"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookSlot(gomock.Any(), *s.principal, gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/5/book", nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 400 on an invalid slot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/x/book", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
