package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DhavalSuthar-24/hooptrack/config"
	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
	"github.com/DhavalSuthar-24/hooptrack/internal/query"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
	"github.com/DhavalSuthar-24/hooptrack/pkg/utils"
	pwd "github.com/DhavalSuthar-24/hooptrack/utils"
)

// UserController handles user account requests
type UserController struct {
	users  store.UserRepository
	query  *query.Service
	config *config.Config
}

func NewUserController(users store.UserRepository, q *query.Service, cfg *config.Config) *UserController {
	return &UserController{users: users, query: q, config: cfg}
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param role query string false "Filter by role"
// @Param search query string false "Match username, name or email"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.User}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := uc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindUser, nil)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	filter := store.UserFilter{Search: c.Query("search")}
	if raw := c.Query("role"); raw != "" {
		role, err := models.ParseRole(raw)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		filter.Role = role
	}

	page, limit := utils.Pagination(c)
	users, total, err := uc.users.List(ctx, filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Users retrieved successfully", users, total, page, limit)
}

// CreateUser godoc
// @Summary Create a user
// @Description Admins create accounts for every role.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} responses.SuccessResponse{data=models.User}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 409 {object} responses.ErrorResponse "Username taken"
// @Security BearerAuth
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := uc.query.Authorize(ctx, p, policy.ActionCreate, query.Ref{Kind: policy.KindUser}); err != nil {
		responses.SendAppError(c, err)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	hashed, err := pwd.HashPassword(req.Password, uc.config.Security.BcryptCost)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Phone:     req.Phone,
		Bio:       req.Bio,
		IsActive:  true,
	}
	if err := uc.users.Create(ctx, &user); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("created_user_id", user.ID).Str("role", role.String()).Msg("user created")
	responses.SendSuccess(c, http.StatusCreated, "User created successfully", user)
}

// GetMe godoc
// @Summary Current user
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Security BearerAuth
// @Router /users/me [get]
func (uc *UserController) GetMe(c *gin.Context) {
	uc.respondWithUser(c, middleware.PrincipalFrom(c).UserID)
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "user_id")
	if !ok {
		return
	}
	uc.respondWithUser(c, id)
}

func (uc *UserController) respondWithUser(c *gin.Context, id uint) {
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := uc.query.Authorize(ctx, p, policy.ActionRead, query.Existing(policy.KindUser, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// IsCoach godoc
// @Summary Whether a user is a coach
// @Tags Users
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{user_id}/is-coach [get]
func (uc *UserController) IsCoach(c *gin.Context) { uc.hasRole(c, models.RoleCoach) }

// IsPlayer godoc
// @Summary Whether a user is a player
// @Tags Users
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{user_id}/is-player [get]
func (uc *UserController) IsPlayer(c *gin.Context) { uc.hasRole(c, models.RolePlayer) }

// IsStatistician godoc
// @Summary Whether a user is a statistician
// @Tags Users
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{user_id}/is-statistician [get]
func (uc *UserController) IsStatistician(c *gin.Context) { uc.hasRole(c, models.RoleStatistician) }

// hasRole answers under the key is_<role>, e.g. {"is_coach": true}.
func (uc *UserController) hasRole(c *gin.Context, role models.Role) {
	id, ok := utils.ParseIDParam(c, "user_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := uc.query.Authorize(ctx, p, policy.ActionRead, query.Existing(policy.KindUser, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Role checked", gin.H{"is_" + role.String(): user.Role == role})
}

// UpdateUser godoc
// @Summary Update a user
// @Description Coaches and statisticians edit their own account; admins edit any.
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path uint true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{user_id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "user_id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := uc.query.Authorize(ctx, p, policy.ActionUpdate, query.Existing(policy.KindUser, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if (req.Role != nil || req.IsActive != nil) && !p.IsAdmin() {
		responses.Forbidden(c, "Only admins may change roles or account status")
		return
	}

	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := uc.users.Update(ctx, user); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "user_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := uc.query.Authorize(ctx, p, policy.ActionDelete, query.Existing(policy.KindUser, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := uc.users.Delete(ctx, id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
