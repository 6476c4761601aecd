package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restevesd/arnes/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/restevesd/arnes/docs"
)

// NewRouter wires the API routes onto a gin engine
func NewRouter(adviceHandler *AdviceHandler, modelHandler *ModelHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/advice", adviceHandler.Check)
	router.GET("/model", modelHandler.Get)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
