package api

import (
	"net/http"
	"strconv"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/handler/middleware"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID    = errs.NewKind("invalid id", errs.ErrValidation)
	errUnauthorized = errs.NewKind("unauthorized", errs.ErrUnauthorized)
	errInvalidQuery = errs.NewKind("invalid query parameter", errs.ErrValidation)
	errViewMapping  = errs.New("failed to map read view")
)

// idParam reads a positive integer path parameter and aborts with 400 otherwise.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrapf(errInvalidID, "%s=%q", name, c.Param(name)), "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func monthParam(c *gin.Context, loc *time.Location) (availability.Month, bool) {
	m, err := availability.ParseMonth(c.Param("month"), loc)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return availability.Month{}, false
	}
	return m, true
}

func optionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery, "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

func requirePrincipal(c *gin.Context) (shared.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return shared.Principal{}, false
	}
	return p, true
}
