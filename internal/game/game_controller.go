package game

import (
	"net/http"

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

// GameController handles schedule and result requests
type GameController struct {
	repos *store.Repositories
	query *query.Service
}

func NewGameController(repos *store.Repositories, q *query.Service) *GameController {
	return &GameController{repos: repos, query: q}
}

// GetGames godoc
// @Summary List games
// @Tags Games
// @Produce json
// @Param team_id query uint false "Games involving this team"
// @Param status query string false "scheduled, live, completed or cancelled"
// @Param season query string false "Season label"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]GameResponse}
// @Failure 400 {object} responses.ErrorResponse "Unknown status"
// @Security BearerAuth
// @Router /games [get]
func (gc *GameController) GetGames(c *gin.Context) {
	teamID, ok := utils.OptionalUint(c, "team_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := gc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindGame, teamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	filter := store.GameFilter{TeamID: teamID, Status: models.GameStatus(c.Query("status")), Season: c.Query("season")}
	page, limit := utils.Pagination(c)
	games, total, err := gc.repos.Games.List(ctx, filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	out := make([]GameResponse, 0, len(games))
	for i := range games {
		out = append(out, newGameResponse(&games[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Games retrieved successfully", out, total, page, limit)
}

// CreateGame godoc
// @Summary Schedule a game
// @Description The coach of either team schedules a game.
// @Tags Games
// @Accept json
// @Produce json
// @Param game body CreateGameRequest true "Game data"
// @Success 201 {object} responses.SuccessResponse{data=GameResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /games [post]
func (gc *GameController) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	ref := query.Ref{Kind: policy.KindGame, TeamID: &req.HomeTeamID, AwayTeamID: req.AwayTeamID}
	if err := gc.query.Authorize(ctx, p, policy.ActionCreate, ref); err != nil {
		responses.SendAppError(c, err)
		return
	}

	game := models.Game{
		HomeTeamID:  req.HomeTeamID,
		AwayTeamID:  req.AwayTeamID,
		ScheduledAt: req.ScheduledAt.UTC(),
		Location:    req.Location,
		Season:      req.Season,
		Status:      models.GameStatusScheduled,
		Notes:       req.Notes,
		CreatedByID: &p.UserID,
	}
	if err := gc.repos.Games.Create(ctx, &game); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("game_id", game.ID).Msg("game scheduled")
	responses.SendSuccess(c, http.StatusCreated, "Game created successfully", newGameResponse(&game))
}

// GetGame godoc
// @Summary Get a game
// @Tags Games
// @Produce json
// @Param game_id path uint true "Game ID"
// @Success 200 {object} responses.SuccessResponse{data=GameResponse}
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /games/{game_id} [get]
func (gc *GameController) GetGame(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "game_id")
	if !ok {
		return
	}
	game, ok := gc.authorized(c, policy.ActionRead, id)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Game retrieved successfully", newGameResponse(game))
}

// authorized loads the game and checks action on it, writing the error
// response itself on failure.
func (gc *GameController) authorized(c *gin.Context, action policy.Action, id uint) (*models.Game, bool) {
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := gc.query.Authorize(ctx, p, action, query.Existing(policy.KindGame, id)); err != nil {
		responses.SendAppError(c, err)
		return nil, false
	}
	game, err := gc.repos.Games.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return nil, false
	}
	return game, true
}

// UpdateGame godoc
// @Summary Update game details
// @Description Coaches of either team, or statisticians on either staff.
// @Tags Games
// @Accept json
// @Produce json
// @Param game_id path uint true "Game ID"
// @Param game body UpdateGameRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=GameResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /games/{game_id} [put]
func (gc *GameController) UpdateGame(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "game_id")
	if !ok {
		return
	}
	var req UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	game, ok := gc.authorized(c, policy.ActionUpdate, id)
	if !ok {
		return
	}

	if req.ScheduledAt != nil {
		game.ScheduledAt = req.ScheduledAt.UTC()
	}
	if req.Location != nil {
		game.Location = *req.Location
	}
	if req.Season != nil {
		game.Season = *req.Season
	}
	if req.Notes != nil {
		game.Notes = *req.Notes
	}
	if req.HomeScore != nil {
		game.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		game.AwayScore = req.AwayScore
	}

	if err := gc.repos.Games.Update(c.Request.Context(), game); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Game updated successfully", newGameResponse(game))
}

// UpdateStatus godoc
// @Summary Move a game through its lifecycle
// @Description scheduled -> live -> completed, or cancelled from scheduled or live. Final scores may accompany completion.
// @Tags Games
// @Accept json
// @Produce json
// @Param game_id path uint true "Game ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=GameResponse}
// @Failure 400 {object} responses.ErrorResponse "Illegal transition"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /games/{game_id}/status [put]
func (gc *GameController) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "game_id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	game, ok := gc.authorized(c, policy.ActionUpdate, id)
	if !ok {
		return
	}

	if err := applyStatus(game, req); err != nil {
		responses.SendAppError(c, err)
		return
	}
	ctx := c.Request.Context()
	if err := gc.repos.Games.Update(ctx, game); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("game_id", id).Str("status", string(game.Status)).Msg("game status changed")
	responses.SendSuccess(c, http.StatusOK, "Game status updated", newGameResponse(game))
}

// applyStatus moves game to the requested status. Scores are only kept on
// completion.
func applyStatus(game *models.Game, req UpdateStatusRequest) error {
	next := models.GameStatus(req.Status)
	if !game.Status.CanTransition(next) {
		return common.InvalidInput("game cannot move from %s to %s", game.Status, next)
	}
	game.Status = next
	if next != models.GameStatusCompleted {
		if req.HomeScore != nil || req.AwayScore != nil {
			return common.InvalidInput("scores can only be set when completing a game")
		}
		game.HomeScore, game.AwayScore = nil, nil
		return nil
	}
	if req.HomeScore != nil {
		game.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		game.AwayScore = req.AwayScore
	}
	return nil
}

// DeleteGame godoc
// @Summary Delete a game
// @Description Removes the game and every box score recorded for it.
// @Tags Games
// @Param game_id path uint true "Game ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /games/{game_id} [delete]
func (gc *GameController) DeleteGame(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "game_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := gc.query.Authorize(ctx, p, policy.ActionDelete, query.Existing(policy.KindGame, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := gc.repos.Games.Delete(ctx, id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("game_id", id).Msg("game deleted")
	responses.SendSuccess(c, http.StatusOK, "Game deleted successfully", nil)
}

// GetGamePerformances godoc
// @Summary Player box scores for a game
// @Tags Games
// @Produce json
// @Param game_id path uint true "Game ID"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Performance}
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /games/{game_id}/performances [get]
func (gc *GameController) GetGamePerformances(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "game_id")
	if !ok {
		return
	}
	if _, ok := gc.authorized(c, policy.ActionRead, id); !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := gc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindPerformance, nil)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	page, limit := utils.Pagination(c)
	perfs, total, err := gc.repos.Performances.List(ctx, store.PerformanceFilter{GameID: &id}, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Performances retrieved successfully", perfs, total, page, limit)
}

// GetGameTeamPerformances godoc
// @Summary Team box scores for a game
// @Tags Games
// @Produce json
// @Param game_id path uint true "Game ID"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.TeamPerformance}
// @Failure 404 {object} responses.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /games/{game_id}/team-performances [get]
func (gc *GameController) GetGameTeamPerformances(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "game_id")
	if !ok {
		return
	}
	if _, ok := gc.authorized(c, policy.ActionRead, id); !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := gc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindTeamPerformance, nil)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	page, limit := utils.Pagination(c)
	tps, total, err := gc.repos.TeamPerformances.List(ctx, store.TeamPerformanceFilter{GameID: &id}, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Team performances retrieved successfully", tps, total, page, limit)
}
