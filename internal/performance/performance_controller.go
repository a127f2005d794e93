package performance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
	"github.com/DhavalSuthar-24/hooptrack/internal/query"
	"github.com/DhavalSuthar-24/hooptrack/internal/stats"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
	"github.com/DhavalSuthar-24/hooptrack/pkg/utils"
)

// PerformanceController serves player and team box scores.
type PerformanceController struct {
	repos *store.Repositories
	query *query.Service
}

func NewPerformanceController(repos *store.Repositories, q *query.Service) *PerformanceController {
	return &PerformanceController{repos: repos, query: q}
}

// ListPerformances godoc
// @Summary List player box scores
// @Tags Performances
// @Produce json
// @Param player_id query uint false "Player ID"
// @Param game_id query uint false "Game ID"
// @Param team_id query uint false "Games played by this team"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Performance}
// @Security BearerAuth
// @Router /performances [get]
func (pc *PerformanceController) ListPerformances(c *gin.Context) {
	var filter store.PerformanceFilter
	var ok bool
	if filter.PlayerID, ok = utils.OptionalUint(c, "player_id"); !ok {
		return
	}
	if filter.GameID, ok = utils.OptionalUint(c, "game_id"); !ok {
		return
	}
	if filter.TeamID, ok = utils.OptionalUint(c, "team_id"); !ok {
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindPerformance, filter.TeamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	page, limit := utils.Pagination(c)
	perfs, total, err := pc.repos.Performances.List(ctx, filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Performances retrieved successfully", perfs, total, page, limit)
}

// CreatePerformance godoc
// @Summary Record a player box score
// @Description Statisticians on the staff of either team record one box score per player per game.
// @Tags Performances
// @Accept json
// @Produce json
// @Param performance body CreatePerformanceRequest true "Box score"
// @Success 201 {object} responses.SuccessResponse{data=PerformanceResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid counts"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Player or game not found"
// @Failure 409 {object} responses.ErrorResponse "Already recorded"
// @Security BearerAuth
// @Router /performances [post]
func (pc *PerformanceController) CreatePerformance(c *gin.Context) {
	var req CreatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if err := stats.Validate(req.BoxScore); err != nil {
		responses.SendAppError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	ref := query.Ref{Kind: policy.KindPerformance, PlayerID: req.PlayerID, GameID: req.GameID}
	if err := pc.query.Authorize(ctx, p, policy.ActionCreate, ref); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := pc.checkRoster(c, req.PlayerID, req.GameID); err != nil {
		responses.SendAppError(c, err)
		return
	}

	perf := models.Performance{
		PlayerID:    req.PlayerID,
		GameID:      req.GameID,
		BoxScore:    req.BoxScore,
		Notes:       req.Notes,
		CreatedByID: &p.UserID,
	}
	if err := pc.repos.Performances.Create(ctx, &perf); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("performance_id", perf.ID).Uint("player_id", perf.PlayerID).Uint("game_id", perf.GameID).Msg("performance recorded")
	pc.respondPerformance(c, http.StatusCreated, "Performance recorded", &perf)
}

// checkRoster requires the player to be on one of the game's teams.
func (pc *PerformanceController) checkRoster(c *gin.Context, playerID, gameID uint) error {
	ctx := c.Request.Context()
	player, err := pc.repos.Players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	game, err := pc.repos.Games.GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if player.TeamID == nil || !game.Involves(*player.TeamID) {
		return common.InvalidInput("player %d does not play for either team in game %d", playerID, gameID)
	}
	return nil
}

// GetPerformance godoc
// @Summary Get a player box score with derived stats
// @Tags Performances
// @Produce json
// @Param performance_id path uint true "Performance ID"
// @Success 200 {object} responses.SuccessResponse{data=PerformanceResponse}
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /performances/{performance_id} [get]
func (pc *PerformanceController) GetPerformance(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "performance_id")
	if !ok {
		return
	}
	perf, derived, err := pc.query.Performance(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Performance retrieved successfully", PerformanceResponse{Performance: *perf, Derived: derived})
}

// UpdatePerformance godoc
// @Summary Correct a player box score
// @Tags Performances
// @Accept json
// @Produce json
// @Param performance_id path uint true "Performance ID"
// @Param performance body UpdateBoxScoreRequest true "New counts"
// @Success 200 {object} responses.SuccessResponse{data=PerformanceResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid counts"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /performances/{performance_id} [put]
func (pc *PerformanceController) UpdatePerformance(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "performance_id")
	if !ok {
		return
	}
	var req UpdateBoxScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if err := stats.Validate(req.BoxScore); err != nil {
		responses.SendAppError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionUpdate, query.Existing(policy.KindPerformance, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	perf, err := pc.repos.Performances.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	perf.BoxScore = req.BoxScore
	if req.Notes != nil {
		perf.Notes = *req.Notes
	}
	if err := pc.repos.Performances.Update(ctx, perf); err != nil {
		responses.SendAppError(c, err)
		return
	}
	pc.respondPerformance(c, http.StatusOK, "Performance updated", perf)
}

// DeletePerformance godoc
// @Summary Delete a player box score
// @Tags Performances
// @Param performance_id path uint true "Performance ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /performances/{performance_id} [delete]
func (pc *PerformanceController) DeletePerformance(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "performance_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionDelete, query.Existing(policy.KindPerformance, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := pc.repos.Performances.Delete(ctx, id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Performance deleted", nil)
}

func (pc *PerformanceController) respondPerformance(c *gin.Context, status int, message string, perf *models.Performance) {
	derived, err := stats.Derive(perf.BoxScore)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, status, message, PerformanceResponse{Performance: *perf, Derived: derived})
}

// ListTeamPerformances godoc
// @Summary List team box scores
// @Tags Team Performances
// @Produce json
// @Param team_id query uint false "Team ID"
// @Param game_id query uint false "Game ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.TeamPerformance}
// @Security BearerAuth
// @Router /team-performances [get]
func (pc *PerformanceController) ListTeamPerformances(c *gin.Context) {
	var filter store.TeamPerformanceFilter
	var ok bool
	if filter.TeamID, ok = utils.OptionalUint(c, "team_id"); !ok {
		return
	}
	if filter.GameID, ok = utils.OptionalUint(c, "game_id"); !ok {
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindTeamPerformance, filter.TeamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	page, limit := utils.Pagination(c)
	tps, total, err := pc.repos.TeamPerformances.List(ctx, filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Team performances retrieved successfully", tps, total, page, limit)
}

// CreateTeamPerformance godoc
// @Summary Record a team box score
// @Description Statisticians on the team's staff record one box score per team per game.
// @Tags Team Performances
// @Accept json
// @Produce json
// @Param performance body CreateTeamPerformanceRequest true "Box score"
// @Success 201 {object} responses.SuccessResponse{data=TeamPerformanceResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid counts"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team or game not found"
// @Failure 409 {object} responses.ErrorResponse "Already recorded"
// @Security BearerAuth
// @Router /team-performances [post]
func (pc *PerformanceController) CreateTeamPerformance(c *gin.Context) {
	var req CreateTeamPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if err := stats.Validate(req.BoxScore); err != nil {
		responses.SendAppError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	ref := query.Ref{Kind: policy.KindTeamPerformance, TeamID: &req.TeamID, GameID: req.GameID}
	if err := pc.query.Authorize(ctx, p, policy.ActionCreate, ref); err != nil {
		responses.SendAppError(c, err)
		return
	}
	game, err := pc.repos.Games.GetByID(ctx, req.GameID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if !game.Involves(req.TeamID) {
		responses.SendAppError(c, common.InvalidInput("team %d does not play in game %d", req.TeamID, req.GameID))
		return
	}

	tp := models.TeamPerformance{
		TeamID:      req.TeamID,
		GameID:      req.GameID,
		BoxScore:    req.BoxScore,
		Notes:       req.Notes,
		CreatedByID: &p.UserID,
	}
	if err := pc.repos.TeamPerformances.Create(ctx, &tp); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("team_performance_id", tp.ID).Uint("team_id", tp.TeamID).Uint("game_id", tp.GameID).Msg("team performance recorded")
	pc.respondTeamPerformance(c, http.StatusCreated, "Team performance recorded", &tp)
}

// GetTeamPerformance godoc
// @Summary Get a team box score with derived stats
// @Tags Team Performances
// @Produce json
// @Param id path uint true "Team performance ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamPerformanceResponse}
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /team-performances/{id} [get]
func (pc *PerformanceController) GetTeamPerformance(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	tp, derived, err := pc.query.TeamPerformance(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team performance retrieved successfully", TeamPerformanceResponse{TeamPerformance: *tp, Derived: derived})
}

// UpdateTeamPerformance godoc
// @Summary Correct a team box score
// @Tags Team Performances
// @Accept json
// @Produce json
// @Param id path uint true "Team performance ID"
// @Param performance body UpdateBoxScoreRequest true "New counts"
// @Success 200 {object} responses.SuccessResponse{data=TeamPerformanceResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid counts"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /team-performances/{id} [put]
func (pc *PerformanceController) UpdateTeamPerformance(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateBoxScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if err := stats.Validate(req.BoxScore); err != nil {
		responses.SendAppError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionUpdate, query.Existing(policy.KindTeamPerformance, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	tp, err := pc.repos.TeamPerformances.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	tp.BoxScore = req.BoxScore
	if req.Notes != nil {
		tp.Notes = *req.Notes
	}
	if err := pc.repos.TeamPerformances.Update(ctx, tp); err != nil {
		responses.SendAppError(c, err)
		return
	}
	pc.respondTeamPerformance(c, http.StatusOK, "Team performance updated", tp)
}

// DeleteTeamPerformance godoc
// @Summary Delete a team box score
// @Tags Team Performances
// @Param id path uint true "Team performance ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /team-performances/{id} [delete]
func (pc *PerformanceController) DeleteTeamPerformance(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := pc.query.Authorize(ctx, p, policy.ActionDelete, query.Existing(policy.KindTeamPerformance, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := pc.repos.TeamPerformances.Delete(ctx, id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team performance deleted", nil)
}

func (pc *PerformanceController) respondTeamPerformance(c *gin.Context, status int, message string, tp *models.TeamPerformance) {
	derived, err := stats.Derive(tp.BoxScore)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, status, message, TeamPerformanceResponse{TeamPerformance: *tp, Derived: derived})
}
