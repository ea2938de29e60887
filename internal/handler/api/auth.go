package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "beautify-api/internal/handler/dto/request"
	resdto "beautify-api/internal/handler/dto/response"
	"beautify-api/internal/pkg/cookie"
	"beautify-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	tokenDuration time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		tokenDuration: tokenDuration,
	}
}

// @Summary Admin login
// @Description Login with the admin email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, result.AccessToken, h.tokenDuration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Email:       result.Email,
		Role:        result.Role,
	})
}

// @Summary Admin logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c)
	c.Status(http.StatusNoContent)
}
