package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "table-reserve/internal/handler/dto/request"
	resdto "table-reserve/internal/handler/dto/response"
	"table-reserve/internal/handler/httperr"
	"table-reserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Sign up customer
// @Description Register a new customer account
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.SignUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /members/user/signup [post]
func (h *AuthHandler) SignUpUser(c *gin.Context) {
	h.signUp(c, h.cmds.SignUpUser)
}

// @Summary Sign up partner
// @Description Register a new store owner account
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.SignUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /members/owner/signup [post]
func (h *AuthHandler) SignUpPartner(c *gin.Context) {
	h.signUp(c, h.cmds.SignUpPartner)
}

func (h *AuthHandler) signUp(c *gin.Context, fn func(ctx context.Context, req reqdto.SignUpRequest) (*commands.SignUpResult, error)) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := fn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sign up request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sign up failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSignUpResult(result))
}

// @Summary Sign in
// @Description Authenticate and receive an access token
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /members/signin [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		// Unknown email and wrong password are indistinguishable on the wire.
		case errors.Is(err, commands.ErrMemberNotFound), errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
