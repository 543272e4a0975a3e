package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arca/internal/models/request_models"
	"arca/internal/models/response_models"
	"arca/internal/services"
	"arca/pkg/middleware"
	"arca/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// Login godoc
// @Summary Start a session
// @Description Mock sign-in: any email gets a free-tier session token
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /session/login [post]
func (sc *SessionController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := sc.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// Logout godoc
// @Summary End the session
// @Description Revokes the bearer token
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/logout [post]
func (sc *SessionController) Logout(c *gin.Context) {
	claims, _ := middleware.Session(c)
	if err := sc.sessionService.Logout(c.Request.Context(), claims); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logout successful")
}

// Me godoc
// @Summary Current session
// @Tags Session
// @Produce json
// @Success 200 {object} response_models.SessionUser
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/me [get]
func (sc *SessionController) Me(c *gin.Context) {
	claims, _ := middleware.Session(c)
	utils.RespondSuccess(c, response_models.NewSessionUser(claims), "Session fetched successfully")
}
