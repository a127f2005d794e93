package team

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
	"github.com/DhavalSuthar-24/hooptrack/internal/query"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
	"github.com/DhavalSuthar-24/hooptrack/pkg/utils"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repos *store.Repositories
	query *query.Service
}

// NewTeamController creates a new team controller
func NewTeamController(repos *store.Repositories, q *query.Service) *TeamController {
	return &TeamController{repos: repos, query: q}
}

// scope narrows a listing to the caller's own team when they are a player
// and no team was requested.
func scope(p policy.Principal, requested *uint) *uint {
	if requested == nil && p.Role == models.RolePlayer {
		return p.TeamID
	}
	return requested
}

// GetAllTeams godoc
// @Summary List teams
// @Description Players only see their own team.
// @Tags Teams
// @Produce json
// @Param search query string false "Name contains"
// @Param city query string false "City"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Team}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()

	teamID := scope(p, nil)
	if err := tc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindTeam, teamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	page, limit := utils.Pagination(c)
	filter := store.TeamFilter{ID: teamID, Search: c.Query("search"), City: c.Query("city")}
	teams, total, err := tc.repos.Teams.List(ctx, filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// CreateTeam godoc
// @Summary Create a team
// @Description Coaches create the team they coach; admins may name any coach.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=models.Team}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 409 {object} responses.ErrorResponse "Name taken or coach already has a team"
// @Security BearerAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if req.CoachID == nil && p.Role == models.RoleCoach {
		req.CoachID = &p.UserID
	}
	if err := tc.query.Authorize(ctx, p, policy.ActionCreate, query.Ref{Kind: policy.KindTeam, CoachID: req.CoachID}); err != nil {
		responses.SendAppError(c, err)
		return
	}

	team := models.Team{
		Name:        req.Name,
		City:        req.City,
		Description: req.Description,
		CoachID:     req.CoachID,
	}
	if err := tc.repos.Teams.Create(ctx, &team); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("team_id", team.ID).Msg("team created")

	created, err := tc.repos.Teams.GetByID(ctx, team.ID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", created)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Team}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := tc.query.Authorize(ctx, p, policy.ActionRead, query.Existing(policy.KindTeam, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	team, err := tc.repos.Teams.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Team}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := tc.query.Authorize(ctx, p, policy.ActionUpdate, query.Existing(policy.KindTeam, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	team, err := tc.repos.Teams.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if req.CoachID != nil && (team.CoachID == nil || *req.CoachID != *team.CoachID) {
		if !p.IsAdmin() {
			responses.Forbidden(c, "Only admins may reassign a team's coach")
			return
		}
		team.CoachID = req.CoachID
		team.Coach = nil
	}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.City != nil {
		team.City = *req.City
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := tc.repos.Teams.Update(ctx, team); err != nil {
		responses.SendAppError(c, err)
		return
	}
	updated, err := tc.repos.Teams.GetByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", updated)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Games and box scores of the team are removed; its players become free agents.
// @Tags Teams
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := tc.query.Authorize(ctx, p, policy.ActionDelete, query.Existing(policy.KindTeam, id)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := tc.repos.Teams.Delete(ctx, id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	zerolog.Ctx(ctx).Info().Uint("team_id", id).Msg("team deleted")
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

// GetTeamPlayers godoc
// @Summary List a team's roster
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Player}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id}/players [get]
func (tc *TeamController) GetTeamPlayers(c *gin.Context) {
	tc.listPlayers(c, nil)
}

// GetActivePlayers godoc
// @Summary List a team's active players
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Player}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id}/players/active [get]
func (tc *TeamController) GetActivePlayers(c *gin.Context) {
	active := true
	tc.listPlayers(c, &active)
}

func (tc *TeamController) listPlayers(c *gin.Context, active *bool) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := tc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindPlayer, &id)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	page, limit := utils.Pagination(c)
	players, total, err := tc.repos.Players.List(ctx, store.PlayerFilter{TeamID: &id, Active: active}, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// AddStaff godoc
// @Summary Add a statistician to the team's staff
// @Tags Teams
// @Param team_id path uint true "Team ID"
// @Param user_id path uint true "Statistician user ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Team}
// @Failure 400 {object} responses.ErrorResponse "User is not a statistician"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 409 {object} responses.ErrorResponse "Already on staff"
// @Security BearerAuth
// @Router /teams/{team_id}/staff/{user_id} [post]
func (tc *TeamController) AddStaff(c *gin.Context) {
	tc.changeStaff(c, tc.repos.Teams.AddStaff, "Staff member added")
}

// RemoveStaff godoc
// @Summary Remove a statistician from the team's staff
// @Tags Teams
// @Param team_id path uint true "Team ID"
// @Param user_id path uint true "Statistician user ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Team}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Not on staff"
// @Security BearerAuth
// @Router /teams/{team_id}/staff/{user_id} [delete]
func (tc *TeamController) RemoveStaff(c *gin.Context) {
	tc.changeStaff(c, tc.repos.Teams.RemoveStaff, "Staff member removed")
}

func (tc *TeamController) changeStaff(c *gin.Context, apply func(ctx context.Context, teamID, userID uint) error, message string) {
	teamID, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	userID, ok := utils.ParseIDParam(c, "user_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := tc.query.Authorize(ctx, p, policy.ActionUpdate, query.Existing(policy.KindTeam, teamID)); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := apply(ctx, teamID, userID); err != nil {
		responses.SendAppError(c, err)
		return
	}
	team, err := tc.repos.Teams.GetByID(ctx, teamID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, team)
}

// GetRecord godoc
// @Summary Won-loss record
// @Description Completed games with both scores count; ties count as losses.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=stats.Record}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id}/record [get]
func (tc *TeamController) GetRecord(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	rec, err := tc.query.TeamRecord(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Record computed", rec)
}

// GetAverages godoc
// @Summary Team per-game averages
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=query.TeamSeason}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id}/averages [get]
func (tc *TeamController) GetAverages(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	avg, err := tc.query.TeamAverages(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Averages computed", avg)
}

// GetSummary godoc
// @Summary Team averages and record
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=query.Summary}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id}/summary [get]
func (tc *TeamController) GetSummary(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	sum, err := tc.query.TeamSummary(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Summary computed", sum)
}

// GetTeamGames godoc
// @Summary List a team's games
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Game}
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{team_id}/games [get]
func (tc *TeamController) GetTeamGames(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	ctx := c.Request.Context()
	if err := tc.query.Authorize(ctx, p, policy.ActionList, query.Collection(policy.KindGame, &id)); err != nil {
		responses.SendAppError(c, err)
		return
	}

	page, limit := utils.Pagination(c)
	games, total, err := tc.repos.Games.List(ctx, store.GameFilter{TeamID: &id, Season: c.Query("season")}, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Games retrieved successfully", games, total, page, limit)
}
