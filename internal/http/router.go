package http

import (
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	health := NewHealthController(cfg.Database, cfg.Version)
	words := NewWordsController(cfg.Engine, cfg.TaskClient)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api", noStoreMiddleware())

	// Inserts are the only requests that reach the dictionary provider.
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{handler}
	}
	if cfg.RateLimitRPS > 0 {
		limiter := newClientRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limited = func(handler gin.HandlerFunc) []gin.HandlerFunc {
			return []gin.HandlerFunc{limiter.Middleware(), handler}
		}
	}

	// Word endpoints. The static list route wins over :word in gin's tree.
	api.GET("/word/list", words.ListWords)
	api.GET("/word/:word", words.GetWord)
	api.POST("/word", limited(words.CreateWord)...)
	api.POST("/word/batch", limited(words.CreateWordsBatch)...)
	api.DELETE("/word/:word", words.DeleteWord)

	// Task status endpoint
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
