package api

import (
	"net/http"
	"strconv"

	"clinic-scheduler/internal/domain/appointment"
	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary List appointments
// @Description Patients see their own, doctors those of their provider profile, admins all. Keyset pagination by start time.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "BOOKED, CANCELLED or COMPLETED"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var status *appointment.Status
	if v := c.Query("status"); v != "" {
		st, err := appointment.NewStatus(v)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		status = &st
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), principal, status, cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentList(items, next))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Change appointment status
// @Description BOOKED to CANCELLED by the owning patient or staff, BOOKED to COMPLETED by staff
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), principal, id, status); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
