package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/hooptrack/config"
	_ "github.com/DhavalSuthar-24/hooptrack/docs"
	"github.com/DhavalSuthar-24/hooptrack/internal/auth"
	"github.com/DhavalSuthar-24/hooptrack/internal/game"
	"github.com/DhavalSuthar-24/hooptrack/internal/middleware"
	"github.com/DhavalSuthar-24/hooptrack/internal/performance"
	"github.com/DhavalSuthar-24/hooptrack/internal/player"
	"github.com/DhavalSuthar-24/hooptrack/internal/query"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/internal/team"
	"github.com/DhavalSuthar-24/hooptrack/internal/user"
)

// Controllers groups every HTTP controller the router mounts.
type Controllers struct {
	Auth        *auth.AuthController
	Users       *user.UserController
	Teams       *team.TeamController
	Players     *player.PlayerController
	Games       *game.GameController
	Performance *performance.PerformanceController
}

// NewControllers builds the controllers over one set of repositories.
func NewControllers(cfg *config.Config, repos *store.Repositories, q *query.Service) *Controllers {
	return &Controllers{
		Auth:        auth.NewAuthController(repos.Users, cfg),
		Users:       user.NewUserController(repos.Users, q, cfg),
		Teams:       team.NewTeamController(repos, q),
		Players:     player.NewPlayerController(repos, q),
		Games:       game.NewGameController(repos, q),
		Performance: performance.NewPerformanceController(repos, q),
	}
}

func SetupRoutes(cfg *config.Config, log zerolog.Logger, db *gorm.DB, repos *store.Repositories, q *query.Service, ctrl *Controllers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMW := middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, repos.Users, q)

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, ctrl.Auth, authMW)
	user.RegisterUserRoutes(api, ctrl.Users, authMW)
	team.TeamRoutes(api, ctrl.Teams, authMW)
	player.PlayerRoutes(api, ctrl.Players, authMW)
	game.GameRoutes(api, ctrl.Games, authMW)
	performance.PerformanceRoutes(api, ctrl.Performance, authMW)

	return r
}
