package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DhavalSuthar-24/hooptrack/config"
	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
	"github.com/DhavalSuthar-24/hooptrack/pkg/token"
	"github.com/DhavalSuthar-24/hooptrack/utils"
)

type AuthController struct {
	users  store.UserRepository
	config *config.Config
}

func NewAuthController(users store.UserRepository, cfg *config.Config) *AuthController {
	return &AuthController{users: users, config: cfg}
}

// Login godoc
// @Summary      Login
// @Description  Exchanges a username and password for an access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := ac.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, common.ErrNotFound) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}
	if !user.IsActive {
		responses.Unauthorized(c, "Account is inactive")
		return
	}

	accessToken, expiresAt, err := token.GenerateJWT(user.ID, user.Role.String(), ac.config.JWT.AccessTokenSecret, ac.config.AccessTokenTTL())
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	zerolog.Ctx(ctx).Info().Uint("user_id", user.ID).Msg("user logged in")
	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	})
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Replaces the caller's password after checking the current one.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Current and new password"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse "Invalid input"
// @Failure      401 {object} responses.ErrorResponse "Current password is wrong"
// @Security     BearerAuth
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := ac.users.GetByID(ctx, userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		responses.Unauthorized(c, "Current password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword, ac.config.Security.BcryptCost)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	user.Password = hashed
	if err := ac.users.Update(ctx, user); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Password updated", nil)
}
