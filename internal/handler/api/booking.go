package api

import (
	"net/http"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book slot
// @Description Book a slot. Patients book for themselves; staff pass patient_id.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Param request body reqdto.BookSlotRequest false "Patient to book for (staff only)"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id}/book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	slotID, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.BookSlotRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBadRequest(c, err, "Invalid request")
			return
		}
	}

	result, err := h.cmds.BookSlot(c.Request.Context(), principal, commands.BookSlotInput{
		SlotID:    slotID,
		PatientID: req.PatientID,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookSlotResult(result))
}
