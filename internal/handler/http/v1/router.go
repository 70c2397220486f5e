package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты сессии: вход открыт, остальные требуют токен.
	// Сессия после logout остается доступной для чтения.
	sessionGroup := api.Group("/session")
	{
		sessionGroup.POST("/login", h.login)

		authed := sessionGroup.Group("", SessionAuthMiddleware(h.sessions, h.logger))
		{
			authed.GET("", h.getSession)
			authed.POST("/logout", h.logout)
		}
	}

	// Маршруты опасностей доступны только при активном входе
	hazards := api.Group("/hazards", SessionAuthMiddleware(h.sessions, h.logger), RequireLoginMiddleware(h.logger))
	{
		hazards.POST("", h.createHazard)
		hazards.GET("", h.listHazards)
		hazards.GET("/stats", h.getStats)
	}

	// Маршруты координат устройства
	location := api.Group("/location", SessionAuthMiddleware(h.sessions, h.logger), RequireLoginMiddleware(h.logger))
	{
		location.POST("", h.publishLocation)
		location.GET("/latest", h.latestLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
