package api

import (
	"net/http"
	"time"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
	loc  *time.Location
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Regenerate month slots
// @Description Replace the unbooked slots of a provider month with slots generated from the template. Booked slots are kept.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Provider ID"
// @Param month path string true "Month (YYYY-MM)"
// @Param request body reqdto.TemplateRequest true "Availability template"
// @Success 200 {object} resdto.RegenerateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /providers/{id}/months/{month}/slots [put]
func (h *AvailabilityHandler) RegenerateMonth(c *gin.Context) {
	providerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	month, ok := monthParam(c, h.loc)
	if !ok {
		return
	}
	var req reqdto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	tmpl, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	result, err := h.cmds.RegenerateMonth(c.Request.Context(), commands.RegenerateMonthInput{
		ProviderID: providerID,
		Month:      month,
		Template:   tmpl,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegenerateResult(result))
}

// @Summary List month slots
// @Description List a provider's slots in a month ordered by start time
// @Tags availability
// @Produce json
// @Param id path int true "Provider ID"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/months/{month}/slots [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	providerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	month, ok := monthParam(c, h.loc)
	if !ok {
		return
	}
	slots, err := h.q.ListSlots(c.Request.Context(), providerID, month)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": resdto.FromSlots(slots)})
}

// @Summary Month grid
// @Description 42-day Sunday-start calendar grid with the provider's slots per day
// @Tags availability
// @Produce json
// @Param id path int true "Provider ID"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.MonthGridResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/months/{month}/grid [get]
func (h *AvailabilityHandler) MonthGrid(c *gin.Context) {
	providerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	month, ok := monthParam(c, h.loc)
	if !ok {
		return
	}
	grid, err := h.q.MonthGrid(c.Request.Context(), providerID, month)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthGrid(grid))
}

// @Summary Month template
// @Description Template last used to generate the provider month
// @Tags availability
// @Produce json
// @Param id path int true "Provider ID"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/months/{month}/template [get]
func (h *AvailabilityHandler) GetTemplate(c *gin.Context) {
	providerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	month, ok := monthParam(c, h.loc)
	if !ok {
		return
	}
	mt, err := h.q.GetTemplate(c.Request.Context(), providerID, month)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthTemplate(mt))
}

// @Summary Default template
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.TemplateResponse
// @Router /templates/default [get]
func (h *AvailabilityHandler) DefaultTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromTemplate(h.q.DefaultTemplate()))
}
