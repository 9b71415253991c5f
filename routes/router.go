package routes

import (
	"net/http"
	"time"

	"collabspace/controllers"
	"collabspace/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with request logging, panic recovery, CORS and
// every API route.
func NewRouter(allowedOrigins []string, projectController *controllers.ProjectController, taskController *controllers.TaskController, teamController *controllers.TeamController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", utils.UserIDHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userMiddleware := utils.RequireUserID()
	SetupProjectRoutes(router, projectController, userMiddleware)
	SetupTaskRoutes(router, taskController, userMiddleware)
	SetupTeamRoutes(router, teamController)

	return router
}
