package api

import (
	"net/http"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SelectionHandler struct {
	svc usecase.SelectionService
}

func NewSelectionHandler(svc usecase.SelectionService) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

// @Summary Select slot
// @Description Remember the slot the caller picked in the calendar
// @Tags selection
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectSlotRequest true "Slot to select"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /selection [put]
func (h *SelectionHandler) Select(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	sel, err := h.svc.Select(c.Request.Context(), principal, req.SlotID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelection(sel))
}

// @Summary Current selection
// @Tags selection
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SelectionResponse
// @Failure 401 {object} httperr.Response
// @Router /selection [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	sel, err := h.svc.Current(c.Request.Context(), principal)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelection(sel))
}

// @Summary Clear selection
// @Tags selection
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /selection [delete]
func (h *SelectionHandler) Clear(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	h.svc.Clear(principal)
	c.Status(http.StatusNoContent)
}
