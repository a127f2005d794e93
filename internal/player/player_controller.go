package player

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
	"github.com/DhavalSuthar-24/hooptrack/internal/query"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
	"github.com/DhavalSuthar-24/hooptrack/pkg/utils"
)

type PlayerController struct {
	repos *store.Repositories
	query *query.Service
}

func NewPlayerController(repos *store.Repositories, q *query.Service) *PlayerController {
	return &PlayerController{repos: repos, query: q}
}

// ListPlayers godoc
// @Summary List players
// @Description Fuzzy name search plus team, position and active filters. Players only see their own team.
// @Tags Players
// @Produce json
// @Param search query string false "Player name, typos tolerated"
// @Param team_id query uint false "Team ID"
// @Param position query string false "PG, SG, SF, PF or C"
// @Param active query bool false "Active players only"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Player}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /players [get]
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	teamID, ok := utils.OptionalUint(c, "team_id")
	if !ok {
		return
	}
	active, ok := utils.OptionalBool(c, "active")
	if !ok {
		return
	}
	filter := store.PlayerFilter{TeamID: teamID, Active: active, Search: c.Query("search")}
	if raw := c.Query("position"); raw != "" {
		pos := models.Position(strings.ToUpper(raw))
		if !pos.Valid() {
			responses.SendAppError(c, common.InvalidInput("unknown position %q", raw))
			return
		}
		filter.Position = &pos
	}

	p := middleware.PrincipalFrom(c)
	if filter.TeamID == nil && p.Role == models.RolePlayer {
		filter.TeamID = p.TeamID
	}
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindPlayer, filter.TeamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	page, limit := utils.Pagination(c)
	players, total, err := pc.repos.Players.List(ctx, filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// CreatePlayer godoc
// @Summary Create a player profile
// @Description The team's coach adds a player-role user to the roster.
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player data"
// @Success 201 {object} responses.SuccessResponse{data=models.Player}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 409 {object} responses.ErrorResponse "Profile exists or jersey taken"
// @Security BearerAuth
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionCreate, query.Ref{Kind: policy.KindPlayer, TeamID: req.TeamID}); err != nil {
		responses.SendAppError(c, err)
		return
	}

	player := models.Player{
		UserID:       req.UserID,
		TeamID:       req.TeamID,
		JerseyNumber: req.JerseyNumber,
		Position:     position(req.Position),
		Height:       req.Height,
		Weight:       req.Weight,
		Wingspan:     req.Wingspan,
		DateOfBirth:  req.DateOfBirth,
		Active:       req.Active == nil || *req.Active,
	}
	if err := pc.repos.Players.Create(ctx, &player); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("player_id", player.ID).Msg("player created")
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", player)
}

// GetMyProfile godoc
// @Summary The caller's player profile
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=models.Player}
// @Failure 404 {object} responses.ErrorResponse "No profile"
// @Security BearerAuth
// @Router /players/me [get]
func (pc *PlayerController) GetMyProfile(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	player, err := pc.repos.Players.GetByUserID(c.Request.Context(), p.UserID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", player)
}

// GetPlayer godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Player}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionRead, query.Existing(policy.KindPlayer, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	player, err := pc.repos.Players.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", player)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path uint true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Player}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Failure 409 {object} responses.ErrorResponse "Jersey taken"
// @Security BearerAuth
// @Router /players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionUpdate, query.Existing(policy.KindPlayer, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	player, err := pc.repos.Players.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	switch {
	case req.ClearTeam:
		player.TeamID = nil
	case req.TeamID != nil && (player.TeamID == nil || *req.TeamID != *player.TeamID):
		// The destination team's coach must agree too.
		if err := pc.query.Authorize(ctx, p, policy.ActionUpdate, query.Ref{Kind: policy.KindPlayer, TeamID: req.TeamID}); err != nil {
			responses.SendAppError(c, err)
			return
		}
		player.TeamID = req.TeamID
	}
	if req.JerseyNumber != nil {
		player.JerseyNumber = req.JerseyNumber
	}
	if req.Position != nil {
		player.Position = position(req.Position)
	}
	if req.Height != nil {
		player.Height = req.Height
	}
	if req.Weight != nil {
		player.Weight = req.Weight
	}
	if req.Wingspan != nil {
		player.Wingspan = req.Wingspan
	}
	if req.DateOfBirth != nil {
		player.DateOfBirth = req.DateOfBirth
	}
	if req.Active != nil {
		player.Active = *req.Active
	}

	if err := pc.repos.Players.Update(ctx, player); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", player)
}

// DeletePlayer godoc
// @Summary Delete a player profile
// @Description Removes the profile and its performances; the user account stays.
// @Tags Players
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionDelete, query.Existing(policy.KindPlayer, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := pc.repos.Players.Delete(ctx, id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}

// GetPlayerPerformances godoc
// @Summary A player's box scores
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Performance}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /players/{player_id}/performances [get]
func (pc *PlayerController) GetPlayerPerformances(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	player, err := pc.repos.Players.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := pc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindPerformance, player.TeamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	page, limit := utils.Pagination(c)
	perfs, total, err := pc.repos.Performances.List(ctx, store.PerformanceFilter{PlayerID: &id}, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Performances retrieved successfully", perfs, total, page, limit)
}

// GetPlayerAverages godoc
// @Summary A player's per-game averages
// @Description Percentages are the mean of per-game percentages.
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=query.PlayerSeason}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /players/{player_id}/averages [get]
func (pc *PlayerController) GetPlayerAverages(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		return
	}
	avg, err := pc.query.PlayerAverages(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Averages computed", avg)
}

func position(raw *string) *models.Position {
	if raw == nil {
		return nil
	}
	pos := models.Position(strings.ToUpper(*raw))
	return &pos
}
