package api

import (
	"log/slog"
	"net/http"
	"time"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/pkg/cookie"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register patient
// @Description Create a patient account with its patient profile and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, result)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, result *commands.LoginResult) {
	me, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		// the token is valid either way
		slog.Warn("failed to load signed-in user", "user_id", result.UserID.String(), "error", err.Error())
	}
	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, time.Duration(result.ExpiresIn)*time.Second)
	c.JSON(status, resdto.FromLoginResult(result, me))
}

// @Summary User logout
// @Description Clears the access token cookie. Tokens are stateless and stay valid until they expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	me, err := h.q.GetCurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}
