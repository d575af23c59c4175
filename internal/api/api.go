// Package api serves the plan editor over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
)

type Handler struct {
	session *Session
}

func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", h.GetCatalog)
	router.PUT("/catalog", h.ReplaceCatalog)

	plans := router.Group("/plan")
	{
		plans.GET("", h.GetPlan)
		plans.DELETE("", h.ClearPlan)
		plans.POST("/generate", h.GeneratePlan)
		plans.POST("/:day/:meal/entries", h.AddEntry)
		plans.PUT("/:day/:meal/entries/:id", h.ReplaceEntry)
		plans.DELETE("/:day/:meal/entries/:id", h.RemoveEntry)
		plans.GET("/:day/usage", h.GetUsage)
		plans.GET("/:day/summary", h.GetSummary)
	}

	router.GET("/shopping-list", h.GetShoppingList)
}

// NewRouter returns an engine with the health check and the versioned API.
func NewRouter(session *Session) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", Health)
	NewHandler(session).RegisterRoutes(router.Group("/api/v1"))
	return router
}
