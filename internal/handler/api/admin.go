package api

import (
	"net/http"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.AdminQueries
}

func NewAdminHandler(q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardStats
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/dashboard/stats [get]
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.q.DashboardStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "ADMIN, DOCTOR or PATIENT"
// @Success 200 {array} queries.AuthorizedUserView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var role *user.Role
	if v := c.Query("role"); v != "" {
		r, err := user.NewRole(v)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		role = &r
	}
	users, err := h.q.ListUsers(c.Request.Context(), role)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
