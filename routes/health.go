package routes

import (
	"net/http"

	"github.com/M-harib/TaskFlow/database"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, db *database.Database) {
	router.GET("/", Home)
	router.GET("/health", func(c *gin.Context) { Health(c, db) })
}

func Home(c *gin.Context) {
	c.String(http.StatusOK, "TaskFlow API is running!")
}

// Health reports whether the store is reachable. The driver error is echoed
// for diagnostics; this endpoint is unauthenticated and must stay the only
// place internal errors surface.
func Health(c *gin.Context, db *database.Database) {
	if err := db.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
